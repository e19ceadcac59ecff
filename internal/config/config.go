package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultEnvFile       = ".env"
	defaultPort          = "8080"
	defaultEnvironment   = "local"
	defaultLocale        = "en"
	defaultTemplatesDir  = "public/templates"
	defaultReadTimeout   = 15 * time.Second
	defaultWriteTimeout  = 15 * time.Second
	defaultIdleTimeout   = 60 * time.Second
	defaultHeaderTimeout = 10 * time.Second
)

// SupportedLocales lists the locale bundles shipped with the binary.
var SupportedLocales = []string{"en", "ja"}

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Metrics   MetricsConfig
	Analytics AnalyticsConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr              string
	Environment       string
	DevMode           bool
	TemplatesDir      string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// SiteConfig holds presentation defaults.
type SiteConfig struct {
	BaseURL       string
	DefaultLocale string
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string
}

// Production reports whether the server runs with production hardening (secure cookies).
func (c Config) Production() bool {
	return strings.EqualFold(c.Server.Environment, "prod")
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration by combining defaults, .env overrides and environment variables.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	p := &parser{lookup: func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}}

	port := p.string("PORT", defaultPort)
	cfg := Config{
		Server: ServerConfig{
			Addr:              p.string("LMS_WEB_ADDR", ":"+port),
			Environment:       strings.ToLower(p.string("LMS_WEB_ENV", defaultEnvironment)),
			DevMode:           p.bool("LMS_WEB_DEV", false),
			TemplatesDir:      p.string("LMS_WEB_TEMPLATES_DIR", defaultTemplatesDir),
			ReadTimeout:       p.duration("LMS_WEB_READ_TIMEOUT", defaultReadTimeout),
			ReadHeaderTimeout: p.duration("LMS_WEB_READ_HEADER_TIMEOUT", defaultHeaderTimeout),
			WriteTimeout:      p.duration("LMS_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       p.duration("LMS_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Site: SiteConfig{
			BaseURL:       strings.TrimRight(p.string("LMS_WEB_BASE_URL", ""), "/"),
			DefaultLocale: strings.ToLower(p.string("LMS_WEB_DEFAULT_LOCALE", defaultLocale)),
		},
		Metrics: MetricsConfig{
			Enabled: p.bool("LMS_WEB_METRICS_ENABLED", true),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: p.string("LMS_WEB_GA_MEASUREMENT_ID", ""),
		},
	}

	if !isSupportedLocale(cfg.Site.DefaultLocale) {
		p.invalid = append(p.invalid, "Site.DefaultLocale")
	}
	switch cfg.Server.Environment {
	case "local", "dev", "staging", "prod":
	default:
		p.invalid = append(p.invalid, "Server.Environment")
	}
	if len(p.invalid) > 0 {
		return Config{}, &ValidationError{fields: p.invalid}
	}
	return cfg, nil
}

type parser struct {
	lookup  func(string) (string, bool)
	invalid []string
}

func (p *parser) string(key, fallback string) string {
	if value, ok := p.lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return d
}

func (p *parser) bool(key string, fallback bool) bool {
	value, ok := p.lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	p.invalid = append(p.invalid, key)
	return fallback
}

func isSupportedLocale(lang string) bool {
	for _, l := range SupportedLocales {
		if l == lang {
			return true
		}
	}
	return false
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(parts[1]), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}
