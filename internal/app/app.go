package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gridpool/playoff-pool/external/espn"
	"github.com/gridpool/playoff-pool/internal/config"
	"github.com/gridpool/playoff-pool/internal/domain/appsettings"
	"github.com/gridpool/playoff-pool/internal/domain/league"
	"github.com/gridpool/playoff-pool/internal/domain/player"
	"github.com/gridpool/playoff-pool/internal/domain/roster"
	"github.com/gridpool/playoff-pool/internal/domain/schedule"
	"github.com/gridpool/playoff-pool/internal/domain/scoring"
	cacherepo "github.com/gridpool/playoff-pool/internal/infrastructure/repository/cache"
	"github.com/gridpool/playoff-pool/internal/infrastructure/repository/memory"
	"github.com/gridpool/playoff-pool/internal/infrastructure/repository/postgres"
	"github.com/gridpool/playoff-pool/internal/interfaces/httpapi"
	"github.com/gridpool/playoff-pool/internal/platform/cache"
	idgen "github.com/gridpool/playoff-pool/internal/platform/id"
	"github.com/gridpool/playoff-pool/internal/platform/logging"
	"github.com/gridpool/playoff-pool/internal/platform/resilience"
	"github.com/gridpool/playoff-pool/internal/scheduler"
	"github.com/gridpool/playoff-pool/internal/usecase"
)

// App bundles the HTTP server with the background scheduler and the
// shared DB handle so main can shut everything down in order.
type App struct {
	Server    *http.Server
	Scheduler *scheduler.Scheduler
	DB        *sqlx.DB
}

type repositories struct {
	leagues  league.Repository
	players  player.Repository
	rosters  roster.Repository
	schedule schedule.Repository
	scores   scoring.Repository
	settings appsettings.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, cacheStore)
		repos.players = cacherepo.NewPlayerRepository(repos.players, cacheStore)
		repos.schedule = cacherepo.NewScheduleRepository(repos.schedule, cacheStore)
	}

	espnClient := espn.NewClient(espn.ClientConfig{
		BaseURL:    cfg.ESPNBaseURL,
		Timeout:    cfg.ESPNTimeout,
		MaxRetries: cfg.ESPNMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})

	format, _ := scoring.ParseFormat(cfg.ScoringFormat)

	roundSvc := usecase.NewRoundService(repos.settings, cacheStore, logger)
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.players)
	syncSvc := usecase.NewScoreSyncService(
		espnClient,
		repos.players,
		repos.scores,
		repos.schedule,
		idgen.NewRandomGenerator(),
		usecase.ScoreSyncConfig{
			Format:          format,
			BackfillWorkers: cfg.SyncBackfillWorkers,
		},
		logger,
	)
	advanceSvc := usecase.NewRoundAdvanceService(roundSvc, repos.rosters, repos.schedule, logger)
	leaderboardSvc := usecase.NewLeaderboardService(repos.leagues, repos.rosters, repos.scores, logger)
	lockSvc := usecase.NewPlayerLockService(repos.schedule, repos.rosters, logger)

	handler := httpapi.NewHandler(leagueSvc, roundSvc, leaderboardSvc, lockSvc, syncSvc, advanceSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	app := &App{Server: server, DB: db}

	if cfg.SchedulerEnabled {
		sched, err := scheduler.New(
			roundSvc,
			syncSvc,
			advanceSvc,
			cfg.JobSyncInterval,
			cfg.JobAdvanceInterval,
			logger,
		)
		if err != nil {
			return nil, err
		}
		app.Scheduler = sched
	}

	return app, nil
}

// buildRepositories wires Postgres-backed storage when DB_URL is set and
// falls back to the seeded in-memory stores otherwise, which keeps local
// development free of infrastructure.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if cfg.DBURL == "" {
		logger.Info("storage: using in-memory repositories", "reason", "DB_URL empty")
		return repositories{
			leagues:  memory.NewLeagueRepository(memory.SeedLeagues()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			rosters:  memory.NewRosterRepository(memory.SeedRosters()),
			schedule: memory.NewScheduleRepository(memory.SeedSchedule()),
			scores:   memory.NewScoreRepository(),
			settings: memory.NewAppSettingsRepository(memory.SeedAppSettings()),
		}, nil, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	logger.Info("storage: using postgres repositories", "db", dbNameFromURL(cfg.DBURL))
	return repositories{
		leagues:  postgres.NewLeagueRepository(db),
		players:  postgres.NewPlayerRepository(db),
		rosters:  postgres.NewRosterRepository(db),
		schedule: postgres.NewScheduleRepository(db),
		scores:   postgres.NewPlayerScoreRepository(db),
		settings: postgres.NewAppSettingsRepository(db),
	}, db, nil
}
