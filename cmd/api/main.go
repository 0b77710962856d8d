package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/department-dto/internal/api/http"
	"github.com/spec-kit/department-dto/internal/config"
	"github.com/spec-kit/department-dto/internal/events"
	"github.com/spec-kit/department-dto/internal/observability"
	"github.com/spec-kit/department-dto/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	events.SubscribeMetrics(dispatcher, metrics)

	departments := service.NewDepartmentService(service.DepartmentDependencies{
		Logger:     logger,
		Metrics:    metrics,
		Dispatcher: dispatcher,
	})

	app := httptransport.NewApp(*cfg, logger, metrics, departments)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()
	logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
