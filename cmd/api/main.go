package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/invoicedash/internal/auth"
	"github.com/MrJamesThe3rd/invoicedash/internal/cache"
	"github.com/MrJamesThe3rd/invoicedash/internal/config"
	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	customerStore "github.com/MrJamesThe3rd/invoicedash/internal/customer/store"
	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
	dashboardStore "github.com/MrJamesThe3rd/invoicedash/internal/dashboard/store"
	"github.com/MrJamesThe3rd/invoicedash/internal/database"
	dashHttp "github.com/MrJamesThe3rd/invoicedash/internal/http"
	apiHandler "github.com/MrJamesThe3rd/invoicedash/internal/http/api"
	dashboardHandler "github.com/MrJamesThe3rd/invoicedash/internal/http/dashboard"
	healthHandler "github.com/MrJamesThe3rd/invoicedash/internal/http/health"
	invoicesHandler "github.com/MrJamesThe3rd/invoicedash/internal/http/invoices"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/page"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/session"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/invoicedash/internal/invoice/store"
	userStore "github.com/MrJamesThe3rd/invoicedash/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(cfg.Logger())

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	pages := cache.NewPages(session.UserKey)

	var (
		authService      = auth.NewService(userStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.BcryptCost)
		invoiceService   = invoice.NewService(invoiceStore.New(db), pages)
		customerService  = customer.NewService(customerStore.New(db))
		dashboardService = dashboard.NewService(dashboardStore.New(db))
	)

	renderer := page.NewRenderer(cfg.App.Name, session.UserName)

	var (
		sessionH   = session.NewHandler(authService, renderer, cfg.Auth.CookieSecure)
		dashboardH = dashboardHandler.NewHandler(dashboardService, invoiceService, customerService, renderer)
		invoicesH  = invoicesHandler.NewHandler(invoiceService, customerService, renderer)
		apiH       = apiHandler.NewHandler(invoiceService, customerService, dashboardService)
		healthH    = healthHandler.NewHandler(db)
	)

	router := dashHttp.New(authService, pages, sessionH, dashboardH, invoicesH, apiH, healthH, dashHttp.Options{
		Timeout:        cfg.Server.Timeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
