// Package poller drives the periodic scoreboard aggregation that keeps the
// in-memory snapshot current.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
)

const defaultInterval = 60 * time.Second

// Aggregator refreshes the snapshot and returns what it gathered.
type Aggregator interface {
	Aggregate(ctx context.Context) []domain.Game
}

// Poller runs the aggregator on an interval.
type Poller struct {
	aggregator Aggregator
	logger     *slog.Logger
	interval   time.Duration
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent activity of the polling loop.
type Status struct {
	LastRun   time.Time
	LastCount int
	Runs      int
}

// IsReady reports whether at least one aggregation cycle has completed.
func (s Status) IsReady() bool {
	return !s.LastRun.IsZero()
}

// New constructs a Poller with sane defaults.
func New(aggregator Aggregator, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		aggregator: aggregator,
		logger:     logger,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial run to warm data on boot.
		p.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.runOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) runOnce(ctx context.Context) {
	games := p.aggregator.Aggregate(ctx)

	p.statusMu.Lock()
	p.status.LastRun = p.now()
	p.status.LastCount = len(games)
	p.status.Runs++
	p.statusMu.Unlock()
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

// Status returns a snapshot of the poller's recent activity.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
