package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogsum/blogsum/config"
	"blogsum/blogsum/controllers"
	"blogsum/blogsum/middlewares"
	"blogsum/blogsum/routes"
	"blogsum/blogsum/services/extractor"
	"blogsum/blogsum/services/fetcher"
	"blogsum/blogsum/services/summarizer"
	"blogsum/blogsum/services/translator"
	"blogsum/blogsum/sources/mongodb"
	"blogsum/blogsum/sources/psql"
	"blogsum/blogsum/sources/psql/dao"
	"blogsum/blogsum/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	settings, err := config.LoadSettings("config.yaml")
	if err != nil {
		logging.ErrorLogger.Error("settings load error", zap.Error(err))
		os.Exit(1)
	}

	// Either store is optional: a write is only attempted when its
	// configuration is present, and an unreachable store disables just
	// that sink.
	var blogs *mongodb.Client
	if cfg.MongoEnabled() {
		blogs, err = mongodb.NewClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("mongo connection error", zap.Error(err))
			blogs = nil
		} else {
			defer blogs.Close()
		}
	}

	var summaryDAO *dao.SummaryDAO
	if cfg.RowStoreEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := psql.NewDatabase(ctx, cfg)
		cancel()
		if err != nil {
			logging.ErrorLogger.Error("database connection error", zap.Error(err))
		} else {
			defer db.Close()
			summaryDAO = dao.NewSummaryDAO(db.DB)
		}
	}

	var strategy summarizer.Summarizer
	if cfg.SummaryAPIKey != "" {
		strategy = summarizer.NewRemote(settings.ChatEndpoint, cfg.SummaryAPIKey, cfg.SummaryModel)
	} else {
		strategy = summarizer.NewHeuristic()
	}

	sumCtrl := controllers.NewSummarizeController(
		fetcher.New(time.Duration(settings.FetchTimeoutSec)*time.Second),
		extractor.New(settings.FallbackTextChars),
		strategy,
		translator.New(settings.TranslateEndpoint),
		blogs,
		summaryDAO,
		settings.ContentCapChars,
	)
	var histCtrl *controllers.HistoryController
	if summaryDAO != nil {
		histCtrl = controllers.NewHistoryController(summaryDAO)
	}
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLog())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/api", routes.APIRoutes(sumCtrl, histCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
