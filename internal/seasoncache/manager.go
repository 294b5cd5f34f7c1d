package seasoncache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/metrics"
	"college-scores-service/internal/providers"
)

// ManagerConfig wires a manager to its sport, data source, and storage.
type ManagerConfig struct {
	Sport    domain.Sport
	Provider providers.SeasonProvider
	Store    *Store
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Manager owns the in-memory season index for one sport and keeps it in
// step with the on-disk snapshot.
type Manager struct {
	sport    domain.Sport
	provider providers.SeasonProvider
	store    *Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot
	loaded   bool

	// refreshMu is held for the duration of a refresh; TryLock makes
	// overlapping triggers collapse into the in-flight one.
	refreshMu sync.Mutex
}

// NewManager constructs a season cache manager for one sport.
func NewManager(cfg ManagerConfig) *Manager {
	return &Manager{
		sport:    cfg.Sport,
		provider: cfg.Provider,
		store:    cfg.Store,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      time.Now,
	}
}

// Sport returns the sport this manager serves.
func (m *Manager) Sport() domain.Sport {
	return m.sport
}

// Warm loads the persisted snapshot and refreshes if nothing usable was
// found or the snapshot is stale. Called once at startup.
func (m *Manager) Warm(ctx context.Context) error {
	snap, found, err := m.store.Load(m.sport.Key)
	if err != nil {
		logging.Warn(m.logger, "season cache load failed",
			slog.String(logging.FieldSport, m.sport.Key),
			"error", err,
		)
	}
	if found && err == nil {
		m.mu.Lock()
		m.snapshot = snap
		m.loaded = true
		m.mu.Unlock()
		logging.Info(m.logger, "season cache loaded",
			slog.String(logging.FieldSport, m.sport.Key),
			slog.Int(logging.FieldCount, len(snap.Data)),
		)
	}

	if m.NeedsRefresh() {
		return m.Refresh(ctx)
	}
	return nil
}

// NeedsRefresh reports whether the cache is missing or stale.
func (m *Manager) NeedsRefresh() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.loaded || m.snapshot.Stale(m.now())
}

// Refresh downloads the season dataset and replaces the snapshot in memory
// and on disk. Overlapping calls coalesce; a failed download keeps the
// previous snapshot intact and returns the error.
func (m *Manager) Refresh(ctx context.Context) error {
	if !m.refreshMu.TryLock() {
		return nil
	}
	defer m.refreshMu.Unlock()

	start := time.Now()
	games, err := m.provider.FetchSeason(ctx, m.now())
	if m.metrics != nil {
		m.metrics.RecordRefreshCycle(m.sport.Key, time.Since(start), err)
	}
	if err != nil {
		logging.Warn(m.logger, "season refresh failed, keeping previous snapshot",
			slog.String(logging.FieldSport, m.sport.Key),
			"error", err,
		)
		return err
	}

	snap := Snapshot{Timestamp: m.now(), Data: buildIndex(games)}
	m.mu.Lock()
	m.snapshot = snap
	m.loaded = true
	m.mu.Unlock()

	if err := m.store.Persist(m.sport.Key, snap); err != nil {
		// The in-memory index is already updated; persistence gets
		// another chance on the next refresh.
		logging.Warn(m.logger, "season cache persist failed",
			slog.String(logging.FieldSport, m.sport.Key),
			"error", err,
		)
	}

	logging.Info(m.logger, "season cache refreshed",
		slog.String(logging.FieldSport, m.sport.Key),
		slog.Int(logging.FieldCount, len(snap.Data)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// Games returns the cached games for a team, exactly as indexed.
func (m *Manager) Games(team string) ([]domain.TeamGame, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	games, ok := m.snapshot.Data[team]
	return games, ok
}

// TeamNames returns every team name present in the index.
func (m *Manager) TeamNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.snapshot.Data))
	for name := range m.snapshot.Data {
		names = append(names, name)
	}
	return names
}

// Ready reports whether an index is available to serve from.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}
