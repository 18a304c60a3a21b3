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

	"orders/cmd"
	apihttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres"
	"orders/internal/pkg/logger"
	"orders/internal/telemetry"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx := context.Background()
	tel, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    configs.ServiceName,
		ServiceVersion: "1.0.0",
		OTLPEndpoint:   configs.OTLPEndpoint,
		EnableTracing:  configs.TracingEnabled(),
		SampleRate:     1.0,
	})
	if err != nil {
		zapLogger.Fatal("initializing telemetry", zap.Error(err))
	}

	dsn := configs.Database().DSN()
	if configs.DBAutoMigrate {
		if err := postgres.Migrate(dsn); err != nil {
			zapLogger.Fatal("running migrations", zap.Error(err))
		}
		zapLogger.Info("migrations applied")
	}

	gormDB, err := postgres.Open(dsn)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	zapLogger.Info("database connected")

	app := cmd.NewCompositionRoot(configs, gormDB, zapLogger)

	e, err := apihttp.NewRouter(app.CreateHTTPServer(), zapLogger)
	if err != nil {
		zapLogger.Fatal("building router", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		zapLogger.Info("starting http server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("telemetry shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
