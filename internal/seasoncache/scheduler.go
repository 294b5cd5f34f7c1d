package seasoncache

import (
	"context"
	"log/slog"
	"time"

	"college-scores-service/internal/logging"
	"college-scores-service/internal/timeutil"
)

// Scheduler refreshes season caches once a day at a configured local hour.
// It ticks hourly; a manager whose cache has gone stale (for example after
// a missed window during downtime) is refreshed on the next tick as well.
type Scheduler struct {
	managers []*Manager
	hour     int
	logger   *slog.Logger
	now      func() time.Time
	location *time.Location
}

// NewScheduler constructs a scheduler for the given managers. hour is the
// local hour (0-23) of the daily refresh.
func NewScheduler(hour int, logger *slog.Logger, managers ...*Manager) *Scheduler {
	if hour < 0 || hour > 23 {
		hour = 2
	}
	return &Scheduler{
		managers: managers,
		hour:     hour,
		logger:   logger,
		now:      time.Now,
		location: timeutil.Eastern(),
	}
}

// Run blocks until ctx is done. Callers should run it in a goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	if len(s.managers) == 0 {
		return
	}
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, s.now())
		}
	}
}

// tick refreshes each manager that is due: every manager at the daily hour,
// and any manager whose snapshot has gone stale in between.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	atDailyHour := now.In(s.location).Hour() == s.hour
	for _, manager := range s.managers {
		if !atDailyHour && !manager.NeedsRefresh() {
			continue
		}
		if err := manager.Refresh(ctx); err != nil {
			logging.Warn(s.logger, "scheduled season refresh failed",
				slog.String(logging.FieldSport, manager.Sport().Key),
				"error", err,
			)
		}
	}
}
