package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pizzeria/internal/auth"
	"pizzeria/internal/auth/session"
	"pizzeria/internal/catalog"
	"pizzeria/internal/config"
	"pizzeria/internal/infrastructure/logger"
	"pizzeria/internal/infrastructure/mysql"
	"pizzeria/internal/message"
	"pizzeria/internal/order"
	"pizzeria/internal/server"
)

func main() {
	// .env is optional; real deployments supply the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.Migrate(db, cfg.Database.MigrationsDir); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}

	sessions := session.NewMemoryStore(5 * time.Minute)
	defer sessions.Close()

	authModule := auth.NewModule(cfg, sessions, zapLogger)
	catalogCtrl := catalog.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, zapLogger)
	messageCtrl := message.NewModule(db, zapLogger)

	router := server.NewRouter(cfg, authModule, catalogCtrl, orderCtrl, messageCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
