package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"marketing-performance-service/internal/config"
	"marketing-performance-service/internal/controller"
	"marketing-performance-service/internal/db"
	httpserver "marketing-performance-service/internal/http"
	"marketing-performance-service/internal/repository"
	"marketing-performance-service/internal/service"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.AppMode == "prod" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewConnection(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("connect clickhouse")
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	repo := repository.NewAnalyticsRepository(conn)
	worker := service.NewBatchRecordWorker(repo, log, cfg.WorkerBufferSize, cfg.WorkerBatchSize, cfg.WorkerFlushEvery)
	analyticsService := service.NewAnalyticsService(repo, worker, log, cfg.FetchRowLimit)
	analyticsController := controller.NewAnalyticsController(analyticsService)

	server := httpserver.NewServer(cfg, analyticsController)

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("server shutdown")
		}
	}()

	log.WithField("addr", cfg.HTTPPort).Info("starting server")
	if err := server.Listen(cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("server stopped")
	}

	worker.Shutdown()
	log.Info("shutdown complete")
}
