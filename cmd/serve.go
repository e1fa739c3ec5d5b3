package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"booking-app/config"
	"booking-app/internal/api/respond"
	routes "booking-app/internal/app/http"
	"booking-app/internal/app/http/middleware"
	"booking-app/internal/bootstrap"
	"booking-app/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inj := bootstrap.BuildContainer()
	cfg, err := do.Invoke[*config.Config](inj)
	if err != nil {
		return err
	}
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.App.Name)
	if err != nil {
		return err
	}

	db, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		return err
	}
	handlers := do.MustInvoke[routes.Handlers](inj)

	r := NewEngine(cfg, log)
	routes.RegisterRoutes(r, handlers, cfg.HTTP.EditorJWTSecret)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.Bool("editor_guard", cfg.HTTP.EditorJWTSecret != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

// NewEngine builds the gin engine with the global middleware: recovery,
// request logging, CORS and, when enabled, tracing.
func NewEngine(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.App.GinMode != "" {
		gin.SetMode(cfg.App.GinMode)
	}

	r := gin.New()
	r.Use(respond.Recovery(log))
	if cfg.Telemetry.Enabled {
		r.Use(telemetry.Middleware(cfg.App.Name)...)
	}
	r.Use(middleware.RequestLogger(log))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader, telemetry.TraceIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origin := strings.TrimSpace(cfg.HTTP.CORSOrigin); origin == "" || origin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(origin, ",")
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	return r
}
