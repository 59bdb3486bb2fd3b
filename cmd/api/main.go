package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dfreire7/repasse/internal/config"
	"github.com/dfreire7/repasse/internal/database"
	"github.com/dfreire7/repasse/internal/feerate"
	feerateStore "github.com/dfreire7/repasse/internal/feerate/store"
	repasseHttp "github.com/dfreire7/repasse/internal/http"
	eventsHandler "github.com/dfreire7/repasse/internal/http/events"
	feerateHandler "github.com/dfreire7/repasse/internal/http/feerate"
	overrideHandler "github.com/dfreire7/repasse/internal/http/override"
	reportHandler "github.com/dfreire7/repasse/internal/http/report"
	transferHandler "github.com/dfreire7/repasse/internal/http/transfer"
	"github.com/dfreire7/repasse/internal/insight"
	"github.com/dfreire7/repasse/internal/notify"
	"github.com/dfreire7/repasse/internal/override"
	overrideStore "github.com/dfreire7/repasse/internal/override/store"
	"github.com/dfreire7/repasse/internal/report"
	reportStore "github.com/dfreire7/repasse/internal/report/store"
	"github.com/dfreire7/repasse/internal/transfer"
	transferStore "github.com/dfreire7/repasse/internal/transfer/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	hub := notify.NewHub()

	var (
		rateStore       = feerateStore.New(db)
		reportService   = report.NewService(reportStore.New(db), rateStore, hub)
		rateService     = feerate.NewService(rateStore, reportService)
		transferService = transfer.NewService(transferStore.New(db))
		propagator      = transfer.NewPropagator(transferStore.New(db), reportService, rateStore)
		overrideService = override.NewService(overrideStore.New(db), propagator, hub)
		insightService  = insight.NewService(reportService, rateService, overrideService)
	)

	var (
		reportsH   = reportHandler.NewHandler(reportService, insightService, cfg.Upload.MaxSize)
		overridesH = overrideHandler.NewHandler(overrideService)
		transfersH = transferHandler.NewHandler(transferService)
		feeratesH  = feerateHandler.NewHandler(rateService)
		eventsH    = eventsHandler.NewHandler(hub)
	)

	router := repasseHttp.New(reportsH, overridesH, transfersH, feeratesH, eventsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
