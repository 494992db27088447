package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/invoicedash/internal/config"
	"github.com/MrJamesThe3rd/invoicedash/internal/database"
	"github.com/MrJamesThe3rd/invoicedash/internal/seed"
)

func main() {
	dir := flag.String("dir", "seed", "directory holding users.csv, customers.csv, invoices.csv and revenue.csv")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(cfg.Logger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, err := seed.Load(os.DirFS(*dir))
	if err != nil {
		slog.Error("failed to read seed files", "dir", *dir, "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if _, err := seed.NewWriter(db, cfg.Auth.BcryptCost).Write(ctx, data); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}
}
