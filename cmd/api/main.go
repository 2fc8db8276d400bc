package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lsantos-dev/moneta/internal/auth"
	"github.com/lsantos-dev/moneta/internal/config"
	"github.com/lsantos-dev/moneta/internal/database"
	monetaHttp "github.com/lsantos-dev/moneta/internal/http"
	importHandler "github.com/lsantos-dev/moneta/internal/http/importcsv"
	networthHandler "github.com/lsantos-dev/moneta/internal/http/networth"
	reportHandler "github.com/lsantos-dev/moneta/internal/http/report"
	subscriptionHandler "github.com/lsantos-dev/moneta/internal/http/subscription"
	transactionHandler "github.com/lsantos-dev/moneta/internal/http/transaction"
	userHandler "github.com/lsantos-dev/moneta/internal/http/user"
	"github.com/lsantos-dev/moneta/internal/importer"
	"github.com/lsantos-dev/moneta/internal/networth"
	networthStore "github.com/lsantos-dev/moneta/internal/networth/store"
	"github.com/lsantos-dev/moneta/internal/report"
	reportStore "github.com/lsantos-dev/moneta/internal/report/store"
	"github.com/lsantos-dev/moneta/internal/subscription"
	subscriptionStore "github.com/lsantos-dev/moneta/internal/subscription/store"
	"github.com/lsantos-dev/moneta/internal/user"
	userStore "github.com/lsantos-dev/moneta/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		userService         = user.NewService(userStore.New(db))
		reportService       = report.NewService(reportStore.New(db))
		subscriptionService = subscription.NewService(subscriptionStore.New(db))
		networthService     = networth.NewService(networthStore.New(db))
		importService       = importer.NewService()
	)

	var (
		userH         = userHandler.NewHandler(userService)
		reportH       = reportHandler.NewHandler(reportService)
		transactionH  = transactionHandler.NewHandler(reportService)
		subscriptionH = subscriptionHandler.NewHandler(subscriptionService)
		networthH     = networthHandler.NewHandler(networthService)
		importH       = importHandler.NewHandler(importService, reportService)
	)

	authMiddleware := auth.Middleware(userService, cfg.Auth.JWTSecret)

	router := monetaHttp.New(
		authMiddleware,
		cfg.CORS.AllowedOrigins,
		userH,
		reportH,
		transactionH,
		subscriptionH,
		networthH,
		importH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
