// Package server runs the HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"likenovel/internal/infrastructure/config"
	"likenovel/internal/infrastructure/database"
	"likenovel/internal/infrastructure/migration"
	httpRouter "likenovel/internal/interfaces/http"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/logger"
)

const shutdownGrace = 30 * time.Second

type options struct {
	env         string
	autoMigrate bool
}

func NewCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the query and command APIs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if v := os.Getenv("ENV"); v != "" && !cmd.Flags().Changed("env") {
				opts.env = v
			}
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.env, "env", "e", "development", "configuration environment")
	cmd.Flags().BoolVar(&opts.autoMigrate, "auto-migrate", false, "apply pending migrations before serving")
	return cmd
}

func run(parent context.Context, opts *options) error {
	cfg, err := config.Load(opts.env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.Server.Mode = ginMode(opts.env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.NewLogger().Named("server")

	if err := biztime.Init(cfg.App.Timezone); err != nil {
		return fmt.Errorf("init timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := checkSchema(db, opts, log); err != nil {
		return err
	}

	router, err := httpRouter.NewRouter(db, cfg, log)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.GetEngine(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", srv.Addr, "env", opts.env, "mode", cfg.Server.Mode)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down", "grace", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// checkSchema applies pending migrations when asked to and otherwise only reports the version.
func checkSchema(db *gorm.DB, opts *options, log logger.Interface) error {
	goose := migration.NewGooseStrategy(log)
	if opts.autoMigrate {
		if isProduction(opts.env) {
			log.Warnw("applying migrations on startup in production")
		}
		return goose.Migrate(db)
	}

	version, err := goose.GetVersion(db)
	if err != nil {
		log.Warnw("schema version unavailable", "error", err)
		return nil
	}
	log.Infow("schema version", "version", version)
	return nil
}

func isProduction(env string) bool {
	return ginMode(env) == gin.ReleaseMode
}

func ginMode(env string) string {
	switch env {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	}
	return gin.DebugMode
}
