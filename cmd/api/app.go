package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"globex/internal/config"
	"globex/internal/llm"
	"globex/internal/locate"
	"globex/internal/news"
	"globex/internal/observability"
	"globex/internal/placement"
	"globex/internal/regions"
	"globex/internal/timezone"
	"globex/internal/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	_ "globex/docs" // Ensure docs are imported
)

const shutdownTimeout = 5 * time.Second

// services groups the dependencies handlers call into
type services struct {
	news    news.Service
	locate  locate.Service
	catalog *regions.Catalog
	engine  *placement.Engine
	session *placement.Session
	metrics *observability.Collector
}

// App encapsulates application dependencies
type App struct {
	router *gin.Engine
	logger *slog.Logger
	svc    services
	cfg    *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	metrics, err := observability.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	catalog, err := regions.Default()
	if err != nil {
		return nil, err
	}

	// Markers are still placed without timezone annotation if tzf fails
	tz, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookup disabled", "error", err)
	}

	provider, err := llm.NewProvider(llm.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, err
	}
	locateSvc := locate.NewLocateService(provider, logger)

	locator, err := placement.NewLocator(cfg.Placement.Strategy, locateSvc)
	if err != nil {
		return nil, err
	}

	newsSvc := news.NewNewsService(news.Options{
		GNewsAPIKey:       cfg.News.GNewsAPIKey,
		NewsAPIKey:        cfg.News.NewsAPIKey,
		Timeout:           cfg.News.Timeout,
		CacheTTL:          cfg.News.CacheTTL,
		RequestsPerSecond: cfg.News.RequestsPerSecond,
		Burst:             cfg.News.Burst,
	}, logger)

	logger.Info("services configured",
		"llm_provider", provider.Name(),
		"strategy", locator.Name(),
		"gnews", cfg.News.GNewsAPIKey != "",
		"newsapi", cfg.News.NewsAPIKey != "",
	)

	return newApp(cfg, logger, services{
		news:    newsSvc,
		locate:  locateSvc,
		catalog: catalog,
		engine:  placement.NewEngine(catalog, locator, tz, metrics, logger),
		session: placement.NewSession(),
		metrics: metrics,
	}), nil
}

func newApp(cfg *config.Config, logger *slog.Logger, svc services) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(svc.metrics.Middleware())

	app := &App{
		router: router,
		logger: logger,
		svc:    svc,
		cfg:    cfg,
	}

	app.registerRoutes()

	return app
}

// Run serves HTTP on addr until ctx is cancelled. When auto refresh is
// enabled the refresher runs for the same lifetime.
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: app.router,
	}

	if app.cfg.App.AutoRefresh {
		go app.newRefresher().Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (app *App) newRefresher() *placement.Refresher {
	query := news.Query{
		Category: app.cfg.App.DefaultCategory,
		Country:  app.cfg.App.DefaultCountry,
	}
	source := func(ctx context.Context) ([]types.Item, error) {
		return app.fetchItems(ctx, query, app.cfg.App.NewsAmount)
	}
	return placement.NewRefresher(
		app.svc.session,
		app.svc.engine,
		source,
		app.cfg.App.DefaultCountry,
		app.cfg.App.RefreshInterval,
		app.logger,
	)
}

// fetchItems loads a feed and returns at most limit items from it.
func (app *App) fetchItems(ctx context.Context, query news.Query, limit int) ([]types.Item, error) {
	feed, err := app.svc.news.GetNews(ctx, query)
	if err != nil {
		var upstream *news.UpstreamError
		if errors.As(err, &upstream) {
			app.svc.metrics.UpstreamError(upstream.Provider)
		}
		return nil, err
	}

	items := feed.Items()
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
