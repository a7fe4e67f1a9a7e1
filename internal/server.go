package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/cache"
	"github.com/2beens/gymtrack/internal/config"
	"github.com/2beens/gymtrack/internal/db"
	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	gymtrackmcp "github.com/2beens/gymtrack/internal/gymstats/mcp"
	"github.com/2beens/gymtrack/internal/gymstats/progress"
	"github.com/2beens/gymtrack/internal/gymstats/sessions"
	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/middleware"
	"github.com/2beens/gymtrack/internal/misc"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	tokenChecker *auth.TokenChecker

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AppTokenHash            string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.MigrateOnStart {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
		log.Debugln("db schema applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymtrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymtrack", rdb)
	if err != nil {
		return nil, err
	}

	if params.AppTokenHash == "" {
		log.Warnln("app token hash not set, all protected routes will be denied")
	}

	return &Server{
		config:       params.Config,
		dbPool:       dbPool,
		redisClient:  rdb,
		tokenChecker: auth.NewTokenChecker(params.AppTokenHash, auth.DefaultVerifiedTTL),
		versionInfo:  params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymtrack-router"))

	miscHandler := misc.NewHandler(s.versionInfo, s.healthChecks())
	miscHandler.SetupRoutes(r)

	settingsRepo := settings.NewRepo(s.dbPool)
	exercisesRepo := exercises.NewRepo(s.dbPool)
	historyRepo := sessions.NewHistoryRepo(s.dbPool)

	analyzer := progress.NewAnalyzer(progress.NewAnalyzerParams{
		History:        historyRepo,
		Exercises:      exercisesRepo,
		Settings:       settingsRepo,
		Cache:          cache.NewJSONCache(s.config.ProgressCacheSizeMB),
		MetricsManager: s.metricsManager,
		CacheTTL:       s.config.ProgressCacheTTL(),
		SessionsLimit:  s.config.ProgressSessionsLimit,
	})
	sessionsService := sessions.NewService(sessions.NewServiceParams{
		Current:        sessions.NewCurrentStore(s.redisClient, s.config.CurrentSessionTTL()),
		History:        historyRepo,
		Exercises:      exercisesRepo,
		Settings:       settingsRepo,
		Progress:       analyzer,
		MetricsManager: s.metricsManager,
	})

	settingsHandler := settings.NewHandler(settingsRepo)
	exercisesHandler := exercises.NewHandler(exercisesRepo, settingsRepo, sessionsService, analyzer)
	sessionsHandler := sessions.NewHandler(sessionsService)
	progressHandler := progress.NewHandler(analyzer)

	// reads
	r.HandleFunc("/gymstats/settings", settingsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-settings")
	r.HandleFunc("/gymstats/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/gymstats/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/gymstats/exercises/{id}/suggestion", exercisesHandler.HandleSuggestion).Methods("GET", "OPTIONS").Name("exercise-suggestion")
	r.HandleFunc("/gymstats/exercises/{id}/history", progressHandler.HandleHistory).Methods("GET", "OPTIONS").Name("exercise-history")
	r.HandleFunc("/gymstats/exercises/{id}/progress", progressHandler.HandleProgress).Methods("GET", "OPTIONS").Name("exercise-progress")
	r.HandleFunc("/gymstats/session", sessionsHandler.HandleGetCurrent).Methods("GET", "OPTIONS").Name("get-session")

	// writes, rate limited per client
	writeRouter := r.PathPrefix("/gymstats").Methods("POST", "PUT", "DELETE", "OPTIONS").Subrouter()
	writeRouter.HandleFunc("/settings", settingsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-settings")
	writeRouter.HandleFunc("/settings/advance", settingsHandler.HandleAdvanceWeek).Methods("POST", "OPTIONS").Name("advance-week")
	writeRouter.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	writeRouter.HandleFunc("/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	writeRouter.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	writeRouter.HandleFunc("/session", sessionsHandler.HandleClear).Methods("DELETE", "OPTIONS").Name("clear-session")
	writeRouter.HandleFunc("/session/exercises/{id}/sets", sessionsHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	writeRouter.HandleFunc("/session/exercises/{id}/sets/{index}", sessionsHandler.HandleRemoveSet).Methods("DELETE", "OPTIONS").Name("remove-set")
	writeRouter.HandleFunc("/session/exercises/{id}/save", sessionsHandler.HandleSaveExercise).Methods("POST", "OPTIONS").Name("save-exercise")
	writeRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"gymstats-write",
		s.config.WriteRateLimitAllowedPerMin,
	))

	// MCP over streamable HTTP, same token as the API
	mcpServer := gymtrackmcp.NewServer(gymtrackmcp.NewContextService(gymtrackmcp.NewContextServiceParams{
		Schema:    gymtrackmcp.NewPoolSchemaRepo(s.dbPool),
		Exercises: exercisesRepo,
		Settings:  settingsRepo,
		Sessions:  sessionsService,
		Analyzer:  analyzer,
	}), s.versionInfo)
	r.Handle("/mcp", gymtrackmcp.NewHTTPHandler(mcpServer)).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(middleware.DefaultMaxRequestBodyBytes))

	return r
}

func (s *Server) healthChecks() map[string]misc.HealthCheck {
	checks := map[string]misc.HealthCheck{}
	if s.dbPool != nil {
		checks["postgres"] = s.dbPool.Ping
	}
	if s.redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		}
	}
	return checks
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
