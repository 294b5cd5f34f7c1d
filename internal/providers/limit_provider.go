package providers

import (
	"context"
	"log/slog"
	"time"

	"college-scores-service/internal/domain"
)

// rateLimitedSeasonProvider wraps a SeasonProvider and enforces a minimum
// interval between FetchSeason calls. The college data APIs are
// quota-limited; successive refresh cycles (startup warm plus the scheduler,
// or two sports sharing a provider) must not hit the API back to back. The
// per-season queries inside one FetchSeason are a single paced unit.
type rateLimitedSeasonProvider struct {
	next     SeasonProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedSeasonProvider returns a SeasonProvider that limits calls to
// the given interval. Calls block until the interval elapses.
func NewRateLimitedSeasonProvider(next SeasonProvider, interval time.Duration, logger *slog.Logger) SeasonProvider {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &rateLimitedSeasonProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedSeasonProvider) FetchSeason(ctx context.Context, now time.Time) ([]domain.SeasonGame, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	if p.logger != nil {
		p.logger.Info("rate-limited season fetch", slog.String("provider", "season"))
	}
	return p.next.FetchSeason(ctx, now)
}

// Close stops the wrapper's ticker.
func (p *rateLimitedSeasonProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
