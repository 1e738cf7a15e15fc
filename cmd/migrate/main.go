package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/geocoder89/eventbook/internal/config"
	"github.com/geocoder89/eventbook/internal/db"
	"github.com/geocoder89/eventbook/internal/observability"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DBURL, 1)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Error("migration failed", "err", err)
		pool.Close()
		os.Exit(1)
	}

	log.Info("schema applied")
}
