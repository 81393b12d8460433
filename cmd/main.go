package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"beer_service/internal/application"
	"beer_service/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// До загрузки конфига пишем логи в tint с уровнем по умолчанию.
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	if err := application.Run(ctx); err != nil {
		slog.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	slog.Info("application stopped")
}
