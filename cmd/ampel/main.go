package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anggasct/ampel"
	"github.com/lmittmann/tint"
)

func main() {
	setupLogger()

	machine := ampel.NewDefault()
	machine.AddObserver(ampel.NewLoggingObserver())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := machine.Start(); err != nil {
		slog.Error("failed to start traffic light", "error", err)
		os.Exit(1)
	}

	// Runs forever until the process is told to terminate
	if err := machine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("traffic light exited with error", "error", err)
		os.Exit(1)
	}
}

func setupLogger() {
	w := os.Stderr
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}
