// Package main is the entry point for the ZeroTabs API server.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/zerotabs/backend/internal/auth"
	"github.com/zerotabs/backend/internal/config"
	"github.com/zerotabs/backend/internal/notify"
	"github.com/zerotabs/backend/internal/server"
	"github.com/zerotabs/backend/internal/service"
	"github.com/zerotabs/backend/internal/storage/sqlite"
	"github.com/zerotabs/backend/pkg/logging"
)

// Build information, set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "zerotabs-server",
		Usage:   "ZeroTabs bill-splitting API server",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				EnvVars: []string{"ZEROTABS_CONFIG"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	slog.Info("Starting zerotabs-server", "version", version, "env", cfg.Server.Env)

	store, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Storage.Path)

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)

	splits := service.NewSplitService(store, cfg.Split)
	svc := server.Services{
		Identity: service.NewIdentityService(store, tokens, notifier, cfg.Auth.ResetOTPTTL),
		Sessions: service.NewSessionService(store),
		Bills:    service.NewBillService(store, splits),
		Splits:   splits,
		Payments: service.NewPaymentService(store),
		Vendors:  service.NewVendorService(store),
	}

	srv := server.New(cfg, tokens, svc)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		errCh <- srv.Listen(cfg.Server.Addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	slog.Info("Server stopped")
	return nil
}

// buildNotifier selects the outbound notifier. Without an SMTP host the
// server logs notifications instead of sending them.
func buildNotifier(cfg *config.Config) (notify.Notifier, error) {
	if cfg.SMTP.Host == "" {
		slog.Warn("SMTP host not configured, notifications will be logged only")
		return notify.NewNoop(), nil
	}
	return notify.NewSMTP(cfg.SMTP)
}
