package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/api"
	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/server"
	"github.com/recipebox/backend/internal/service"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	// Image uploads are disabled, not fatal, when S3 is unconfigured.
	var uploader api.ImageUploader
	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logrus.WithError(err).Warn("S3 not configured, image uploads disabled")
	} else {
		uploader = service.NewImageService(s3cfg)
	}

	// Rate limiting is skipped when Redis is unavailable.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, rate limiting disabled")
		redisClient = nil
	}

	srv := server.New(cfg, db, uploader, redisClient)

	errChan := make(chan error, 1)
	go func() {
		logrus.WithField("addr", cfg.ServerHost+":"+cfg.ServerPort).Info("starting server")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logrus.Fatalf("server error: %v", err)
		}
	case sig := <-quit:
		logrus.Infof("received signal: %v", sig)
	}

	logrus.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server shutdown error: %v", err)
	}
	logrus.Info("server stopped")
}
