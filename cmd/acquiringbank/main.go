package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/payment-gateway/acquiringbank"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file; using process environment")
	}

	cfg := acquiringbank.DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		logger.Error("parsing config", "err", err)
		os.Exit(1)
	}

	app := acquiringbank.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}
