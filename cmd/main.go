package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/content-scheduler/internal/app"
	"github.com/orgball2608/content-scheduler/pkg/logger"
	"go.uber.org/fx"
)

const (
	startTimeout = 30 * time.Second
	stopTimeout  = 15 * time.Second
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	scheduler := fx.New(
		fx.Logger(log),
		fx.StartTimeout(startTimeout),
		fx.StopTimeout(stopTimeout),
		app.Module,
	)
	if err := scheduler.Err(); err != nil {
		log.Error("Invalid dependency graph", "error", err)
		os.Exit(1)
	}

	signalCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	startCtx, cancelStart := context.WithTimeout(context.Background(), startTimeout)
	err := scheduler.Start(startCtx)
	cancelStart()
	if err != nil {
		log.Error("Failed to start content scheduler", "error", err)
		os.Exit(1)
	}
	log.Info("Content scheduler started")

	<-signalCtx.Done()
	stopSignals()
	log.Info("Shutdown signal received, stopping")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), stopTimeout)
	err = scheduler.Stop(stopCtx)
	cancelStop()
	if err != nil {
		log.Error("Failed to stop content scheduler", "error", err)
		os.Exit(1)
	}
}
