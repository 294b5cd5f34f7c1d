package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type refreshStats struct {
	cycles      int
	failures    int
	lastSuccess time.Time
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// season cache refreshes. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*providerStats
	refreshes map[string]*refreshStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*providerStats),
		refreshes: make(map[string]*refreshStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRefreshCycle tracks one season cache refresh attempt for a sport.
func (r *Recorder) RecordRefreshCycle(sport string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.refreshes[sport]
	if !ok {
		stats = &refreshStats{}
		r.refreshes[sport] = stats
	}
	stats.cycles++
	if err != nil {
		stats.failures++
	} else {
		stats.lastSuccess = time.Now()
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefresh(sport, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RefreshCycles returns the total refresh attempts recorded for a sport.
func (r *Recorder) RefreshCycles(sport string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.refreshes[sport]; ok && stats != nil {
		return stats.cycles
	}
	return 0
}

// RefreshFailures returns the failed refresh attempts recorded for a sport.
func (r *Recorder) RefreshFailures(sport string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.refreshes[sport]; ok && stats != nil {
		return stats.failures
	}
	return 0
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
