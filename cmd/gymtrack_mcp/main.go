// Package main runs the gymtrack MCP server over stdio (for local editor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"net"
	"os"

	"github.com/2beens/gymtrack/internal/cache"
	"github.com/2beens/gymtrack/internal/config"
	"github.com/2beens/gymtrack/internal/db"
	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	gymtrackmcp "github.com/2beens/gymtrack/internal/gymstats/mcp"
	"github.com/2beens/gymtrack/internal/gymstats/progress"
	"github.com/2beens/gymtrack/internal/gymstats/sessions"
	"github.com/2beens/gymtrack/internal/gymstats/settings"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		MaxConns:       4,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("GYMTRACK_REDIS_PASS"),
	})
	defer rdb.Close()

	// metrics are not exported from this process
	metricsManager := metrics.NewManager("gymtrack", "mcp", prometheus.NewRegistry())

	settingsRepo := settings.NewRepo(dbPool)
	exercisesRepo := exercises.NewRepo(dbPool)
	historyRepo := sessions.NewHistoryRepo(dbPool)
	analyzer := progress.NewAnalyzer(progress.NewAnalyzerParams{
		History:        historyRepo,
		Exercises:      exercisesRepo,
		Settings:       settingsRepo,
		Cache:          cache.NewJSONCache(1),
		MetricsManager: metricsManager,
		CacheTTL:       cfg.ProgressCacheTTL(),
		SessionsLimit:  cfg.ProgressSessionsLimit,
	})
	sessionsService := sessions.NewService(sessions.NewServiceParams{
		Current:        sessions.NewCurrentStore(rdb, cfg.CurrentSessionTTL()),
		History:        historyRepo,
		Exercises:      exercisesRepo,
		Settings:       settingsRepo,
		Progress:       analyzer,
		MetricsManager: metricsManager,
	})

	server := gymtrackmcp.NewServer(gymtrackmcp.NewContextService(gymtrackmcp.NewContextServiceParams{
		Schema:    gymtrackmcp.NewPoolSchemaRepo(dbPool),
		Exercises: exercisesRepo,
		Settings:  settingsRepo,
		Sessions:  sessionsService,
		Analyzer:  analyzer,
	}), "")

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
