package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cinebox/api/routes"
	"cinebox/internal/notifications"
	"cinebox/internal/seating"
	"cinebox/internal/shared/config"
	"cinebox/internal/shared/database"
	"cinebox/internal/shared/database/migrations"
	"cinebox/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	log := logger.New()
	logger.SetDefault(log)

	registerValidators()

	conns, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to connect to storage", "error", err)
		os.Exit(1)
	}
	defer conns.Close()

	if err := migrations.Migrate(conns.DB); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	producer, err := notifications.NewProducer(cfg.Kafka, log)
	if err != nil {
		log.Error("failed to connect kafka producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	router := routes.SetupRouter(cfg, conns, producer, log)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr, "mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	log.Info("server stopped")
}

// registerValidators installs the custom binding validators
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("seatclass", func(fl validator.FieldLevel) bool {
		switch strings.ToUpper(fl.Field().String()) {
		case seating.ClassStandard, seating.ClassGold:
			return true
		}
		return false
	})
}
