package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"legislators_dashboard/config"
	"legislators_dashboard/handlers"
	"legislators_dashboard/logger"
	"legislators_dashboard/render"
)

var serveFlags struct {
	port    string
	dataDir string
	variant string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.port, "port", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&serveFlags.dataDir, "data-dir", "", "dataset directory (overrides DATA_DIR)")
	serveCmd.Flags().StringVar(&serveFlags.variant, "variant", "", "presentation variant: plain or legislators (overrides DASHBOARD_VARIANT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()
	if serveFlags.port != "" {
		cfg.Port = serveFlags.port
	}
	if serveFlags.dataDir != "" {
		cfg.DataDir = serveFlags.dataDir
	}
	if serveFlags.variant != "" {
		cfg.Variant = serveFlags.variant
	}

	startTime := time.Now()
	logger.Logger.Infof("Starting dashboard initialization at %s", startTime.Format(time.RFC3339))

	data, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		return errors.Wrap(err, "load datasets")
	}

	presentation, err := handlers.PresentationFor(cfg.Variant, cfg.BannerPath)
	if err != nil {
		return err
	}
	sessions := handlers.NewSessions(config.NewSessionCache(cfg.SessionTTL))
	dashboard, err := handlers.NewDashboard(data, sessions, presentation, render.Size{Width: cfg.ChartWidth, Height: cfg.ChartHeight})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler: handlers.NewRouter(dashboard, handlers.RouterOptions{
			AllowedOrigins: cfg.AllowedOrigins,
			CORSDebug:      cfg.CORSDebug,
		}),
		Addr:              cfg.Addr(),
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Logger.Infof("Starting server on port %s (variant %s)...", cfg.Port, presentation.Variant)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()
	logger.Logger.Infof("Dashboard ready in %s at http://localhost:%s", time.Since(startTime), cfg.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Logger.Info("Shutdown signal received")
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")
	}

	logger.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	logger.Logger.Info("Server shutdown completed successfully")
	return nil
}
