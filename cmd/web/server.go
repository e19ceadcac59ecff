package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/catalog"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/cms"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/config"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/contact"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/i18n"
	mw "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/middleware"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/observability"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/public"
)

const requestTimeout = 30 * time.Second

// app holds the immutable state shared by every request.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	metrics  *observability.Metrics
	catalog  *catalog.Catalog
	bundle   *i18n.Bundle
	pages    *cms.Store
	sink     contact.Sink
	renderer *renderer
	static   fs.FS
	now      func() time.Time
}

type appOption func(*app)

// withSink replaces the default logging sink.
func withSink(s contact.Sink) appOption {
	return func(a *app) { a.sink = s }
}

// withTemplates overrides the template tree.
func withTemplates(fsys fs.FS) appOption {
	return func(a *app) { a.renderer.fsys = fsys }
}

func newApp(cfg config.Config, logger *zap.Logger, metrics *observability.Metrics, opts ...appOption) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	bundle, err := i18n.Load(i18n.Embedded(), cfg.Site.DefaultLocale, config.SupportedLocales)
	if err != nil {
		return nil, fmt.Errorf("load i18n: %w", err)
	}
	pages, err := cms.Load(cms.Embedded(), cfg.Site.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("load page copy: %w", err)
	}

	templates := public.Templates()
	if cfg.Server.DevMode && cfg.Server.TemplatesDir != "" {
		templates = os.DirFS(cfg.Server.TemplatesDir)
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		catalog: cat,
		bundle:  bundle,
		pages:   pages,
		sink:    contact.NewLogSink(logger),
		static:  public.Static(),
		now:     time.Now,
	}
	a.renderer = newRenderer(templates, cfg.Server.DevMode, a.funcMap())
	for _, opt := range opts {
		opt(a)
	}
	if !a.renderer.dev {
		if err := a.renderer.load(); err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
	}
	return a, nil
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.InjectLogger(a.logger))
	r.Use(observability.Trace)
	r.Use(observability.RequestLogger(a.metrics))
	r.Use(observability.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}
	r.Handle("/assets/*", mw.AssetsWithCache(a.static, a.cfg.Server.DevMode))

	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX)
		r.Use(mw.Locale(a.bundle, a.cfg.Production()))
		r.Use(mw.CSRF(mw.CSRFConfig{Secure: a.cfg.Production()}))
		r.Use(mw.VaryLocale)

		r.Get("/", a.homeHandler)
		r.Get("/contact", a.contactHandler)
		r.Post("/contact", a.contactSubmitHandler)
		r.Post("/contact/validate", a.contactValidateHandler)
	})
	return r
}
