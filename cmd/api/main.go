package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if !timezone.IsValid(cfg.Timezone) {
		zl.Warn("invalid TIMEZONE, falling back to UTC", zap.String("timezone", cfg.Timezone))
		cfg.Timezone = timezone.DefaultTimezone
	}

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to store", zap.Error(err))
	}
	defer dbpkg.Close(db)

	var publisher audit.Publisher = audit.NewLogPublisher(zl)
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rp, err := audit.NewRedisPublisher(ctx, cfg.RedisURL, cfg.EventsChannel)
		cancel()
		if err != nil {
			zl.Warn("redis unavailable, events go to the log", zap.Error(err))
		} else {
			defer rp.Close()
			publisher = rp
		}
	}

	dispatcher := audit.NewDispatcher(publisher, zl, 256)
	defer dispatcher.Close()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Repo:     infraRepo.NewAppointmentGormRepository(db),
		Audit:    dispatcher,
		Metrics:  metrics.New("clinicas"),
		Log:      zl,
		Timezone: cfg.Timezone,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}
}
