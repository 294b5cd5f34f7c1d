package seasoncache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/timeutil"
)

func freshManager(t *testing.T, provider *stubSeasonProvider) *Manager {
	t.Helper()
	manager := newTestManager(t, provider)
	if err := manager.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	atomic.StoreInt32(&provider.calls, 0)
	return manager
}

func TestSchedulerTickRefreshesAtDailyHour(t *testing.T) {
	provider := &stubSeasonProvider{games: []domain.SeasonGame{completedGame()}}
	manager := freshManager(t, provider)
	scheduler := NewScheduler(2, nil, manager)

	at := time.Date(2025, 1, 15, 2, 30, 0, 0, timeutil.Eastern())
	scheduler.tick(context.Background(), at)

	if got := atomic.LoadInt32(&provider.calls); got != 1 {
		t.Fatalf("expected refresh at daily hour, got %d calls", got)
	}
}

func TestSchedulerTickSkipsFreshCacheOffHour(t *testing.T) {
	provider := &stubSeasonProvider{games: []domain.SeasonGame{completedGame()}}
	manager := freshManager(t, provider)
	scheduler := NewScheduler(2, nil, manager)

	at := time.Date(2025, 1, 15, 14, 0, 0, 0, timeutil.Eastern())
	scheduler.tick(context.Background(), at)

	if got := atomic.LoadInt32(&provider.calls); got != 0 {
		t.Fatalf("expected no refresh off-hour for a fresh cache, got %d calls", got)
	}
}

func TestSchedulerTickRefreshesStaleCacheOffHour(t *testing.T) {
	provider := &stubSeasonProvider{games: []domain.SeasonGame{completedGame()}}
	manager := newTestManager(t, provider) // never refreshed, so stale
	scheduler := NewScheduler(2, nil, manager)

	at := time.Date(2025, 1, 15, 14, 0, 0, 0, timeutil.Eastern())
	scheduler.tick(context.Background(), at)

	if got := atomic.LoadInt32(&provider.calls); got != 1 {
		t.Fatalf("expected stale cache to refresh on any tick, got %d calls", got)
	}
}

func TestSchedulerClampsInvalidHour(t *testing.T) {
	scheduler := NewScheduler(99, nil)
	if scheduler.hour != 2 {
		t.Fatalf("expected invalid hour to clamp to 2, got %d", scheduler.hour)
	}
}
