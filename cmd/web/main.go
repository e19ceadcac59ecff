package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/config"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/observability"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type serveFlags struct {
	addr         string
	dev          bool
	templatesDir string
	envFile      string
}

func newRootCmd() *cobra.Command {
	var flags serveFlags

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	addServeFlags(serveCmd, &flags)

	rootCmd := &cobra.Command{
		Use:           "lms-web",
		Short:         "LMS Genie web front end",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
	addServeFlags(rootCmd, &flags)

	rootCmd.AddCommand(serveCmd, &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return rootCmd
}

func addServeFlags(cmd *cobra.Command, flags *serveFlags) {
	cmd.Flags().StringVar(&flags.addr, "addr", "", "HTTP listen address (overrides LMS_WEB_ADDR)")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "reparse templates on every request and disable asset caching")
	cmd.Flags().StringVar(&flags.templatesDir, "templates", "", "templates directory used in dev mode")
	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "dotenv file to read (default .env)")
}

// loadConfig applies command-line flags on top of the environment.
func loadConfig(cmd *cobra.Command, flags serveFlags) (config.Config, error) {
	var opts []config.Option
	if flags.envFile != "" {
		opts = append(opts, config.WithEnvFile(flags.envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = flags.addr
	}
	if cmd.Flags().Changed("dev") {
		cfg.Server.DevMode = flags.dev
	}
	if cmd.Flags().Changed("templates") {
		cfg.Server.TemplatesDir = flags.templatesDir
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, flags serveFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		if metrics, err = observability.NewMetrics(); err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
	}

	app, err := newApp(cfg, logger, metrics)
	if err != nil {
		return err
	}
	srv := newHTTPServer(cfg.Server, app.routes())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("web listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("env", cfg.Server.Environment),
		zap.Bool("dev_mode", cfg.Server.DevMode),
		zap.String("version", version),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
