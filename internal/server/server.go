package server

import (
	"context"
	"log/slog"
	"net/http"

	"college-scores-service/internal/app/games"
	"college-scores-service/internal/app/teams"
	"college-scores-service/internal/config"
	"college-scores-service/internal/domain"
	"college-scores-service/internal/history"
	httpserver "college-scores-service/internal/http"
	"college-scores-service/internal/http/handlers"
	"college-scores-service/internal/http/middleware"
	"college-scores-service/internal/identity"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/metrics"
	"college-scores-service/internal/poller"
	"college-scores-service/internal/providers"
	"college-scores-service/internal/providers/cfbd"
	"college-scores-service/internal/providers/espn"
	"college-scores-service/internal/providers/oddsapi"
	"college-scores-service/internal/seasoncache"
	"college-scores-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns every long-lived component and their lifecycles.
type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	gamesService   *games.Service
	teamsService   *teams.Service
	httpServer     httpServer
	metricsServer  httpServer
	poller         Poller
	seasonManagers []*seasoncache.Manager
	scheduler      *seasoncache.Scheduler
	metricsStop    func(context.Context) error
	closers        []func()
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	memoryStore := store.NewMemoryStore()
	scoreboard := espn.NewClient(espn.Config{
		BaseURL: cfg.ESPN.BaseURL,
		Logger:  logger,
		Metrics: recorder,
	})

	var totals providers.TotalsProvider
	if cfg.Odds.Configured() {
		totals = oddsapi.NewClient(oddsapi.Config{
			BaseURL: cfg.Odds.BaseURL,
			APIKey:  cfg.Odds.APIKey,
			Logger:  logger,
			Metrics: recorder,
		})
	}

	srv := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		store:   memoryStore,
	}

	caches := srv.buildSeasonCaches(cfg, logger, recorder)
	historyResolver := buildHistoryResolver(scoreboard, caches, memoryStore, logger)

	srv.gamesService = games.NewService(memoryStore, scoreboard, totals, historyResolver, logger)
	srv.teamsService = teams.NewService(memoryStore, scoreboard)

	plr := poller.New(srv.gamesService, logger, cfg.PollInterval)
	srv.poller = plr
	srv.scheduler = seasoncache.NewScheduler(cfg.Cache.RefreshHour, logger, srv.seasonManagers...)

	srv.httpServer = buildHTTPServer(cfg, handlers.Config{
		Games:          srv.gamesService,
		Teams:          srv.teamsService,
		History:        historyResolver,
		Logger:         logger,
		Status:         plr.Status,
		OddsConfigured: cfg.Odds.Configured(),
	}, logger, recorder)
	srv.metricsServer = metricsSrv
	srv.metricsStop = metricsShutdown
	return srv
}

// buildSeasonCaches wires one cache manager per cache-backed sport. The
// season providers are rate limited to stay inside the free API tiers.
func (s *Server) buildSeasonCaches(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) map[string]history.SeasonCache {
	cacheStore := seasoncache.NewStore(cfg.Cache.Dir)
	caches := make(map[string]history.SeasonCache)

	for _, sport := range domain.Sports() {
		if !sport.CacheBacked {
			continue
		}
		provider := s.seasonProvider(sport, cfg, logger, recorder)
		if provider == nil {
			continue
		}
		manager := seasoncache.NewManager(seasoncache.ManagerConfig{
			Sport:    sport,
			Provider: provider,
			Store:    cacheStore,
			Logger:   logger,
			Metrics:  recorder,
		})
		s.seasonManagers = append(s.seasonManagers, manager)
		caches[sport.Key] = manager
	}
	return caches
}

func (s *Server) seasonProvider(sport domain.Sport, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.SeasonProvider {
	var client *cfbd.Client
	switch sport.Key {
	case "ncaaf":
		client = cfbd.NewFootballClient(cfbd.Config{
			BaseURL: cfg.CFBD.BaseURL,
			APIKey:  cfg.CFBD.APIKey,
			Logger:  logger,
			Metrics: recorder,
		})
	case "ncaab":
		client = cfbd.NewBasketballClient(cfbd.Config{
			BaseURL: cfg.CBBD.BaseURL,
			APIKey:  cfg.CBBD.APIKey,
			Logger:  logger,
			Metrics: recorder,
		})
	default:
		return nil
	}

	limited := providers.NewRateLimitedSeasonProvider(client, 0, logger)
	if closer, ok := limited.(interface{ Close() }); ok {
		s.closers = append(s.closers, closer.Close)
	}
	return limited
}

func buildHistoryResolver(scoreboard providers.ScoreboardProvider, caches map[string]history.SeasonCache, directory history.TeamDirectory, logger *slog.Logger) *history.Resolver {
	ids, err := identity.NewResolver()
	if err != nil {
		logging.Warn(logger, "team identity table unavailable", "error", err)
	}
	return history.NewResolver(history.Config{
		Scoreboard: scoreboard,
		Identity:   ids,
		Caches:     caches,
		Directory:  directory,
		Logger:     logger,
	})
}

func buildHTTPServer(cfg config.Config, handlerCfg handlers.Config, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(handlerCfg)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts every component, then waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.warmSeasonCaches(ctx)
	go s.scheduler.Run(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// warmSeasonCaches loads disk snapshots and refreshes stale ones without
// blocking startup; scoreboard traffic is served meanwhile.
func (s *Server) warmSeasonCaches(ctx context.Context) {
	for _, manager := range s.seasonManagers {
		go func(manager *seasoncache.Manager) {
			_ = manager.Warm(ctx)
		}(manager)
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks.
	for _, closeFn := range s.closers {
		closeFn()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
