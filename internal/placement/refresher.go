package placement

import (
	"context"
	"log/slog"
	"time"

	"globex/internal/types"
)

// DefaultRefreshInterval matches the frontend's polling period.
const DefaultRefreshInterval = 5 * time.Minute

// ItemSource fetches the items for one refresh.
type ItemSource func(ctx context.Context) ([]types.Item, error)

// Refresher periodically fetches news and re-places the session's batch.
type Refresher struct {
	session     *Session
	engine      *Engine
	source      ItemSource
	countryCode string
	interval    time.Duration
	logger      *slog.Logger
}

func NewRefresher(session *Session, engine *Engine, source ItemSource, countryCode string, interval time.Duration, logger *slog.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		session:     session,
		engine:      engine,
		source:      source,
		countryCode: countryCode,
		interval:    interval,
		logger:      logger.With("component", "refresher"),
	}
}

// Run refreshes immediately and then on every tick until ctx is done.
// Ticks that arrive while fetching is paused are skipped.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting auto refresh", "interval", r.interval, "country", r.countryCode)
	r.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("auto refresh stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if r.session.FetchPaused() {
		r.logger.Debug("fetch paused, skipping refresh")
		return
	}

	items, err := r.source(ctx)
	if err != nil {
		r.logger.Error("failed to fetch items", "error", err)
		return
	}

	if _, err := r.session.Run(ctx, r.engine, items, r.countryCode); err != nil {
		r.logger.Error("failed to place batch", "error", err)
	}
}
