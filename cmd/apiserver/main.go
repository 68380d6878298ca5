// API server entry point for PolicyLens.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turtacn/PolicyLens/internal/analysis/clause"
	"github.com/turtacn/PolicyLens/internal/analysis/nlp"
	"github.com/turtacn/PolicyLens/internal/analysis/risk"
	"github.com/turtacn/PolicyLens/internal/application/assessment"
	"github.com/turtacn/PolicyLens/internal/config"
	"github.com/turtacn/PolicyLens/internal/infrastructure/cache/redis"
	"github.com/turtacn/PolicyLens/internal/infrastructure/database/postgres"
	"github.com/turtacn/PolicyLens/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/PolicyLens/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/turtacn/PolicyLens/internal/interfaces/http"
	"github.com/turtacn/PolicyLens/internal/interfaces/http/handlers"
	"github.com/turtacn/PolicyLens/internal/interfaces/http/middleware"
)

// Build-time variables injected via ldflags.
var version = "dev"

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default configuration: %v\n", err)
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting PolicyLens API server",
		logging.String("version", version),
		logging.Int("http_port", cfg.Server.Port))

	collector := prometheus.NewCollector(prometheus.CollectorConfig{
		Namespace:            cfg.Metrics.Namespace,
		EnableRuntimeMetrics: true,
	})
	metrics := prometheus.NewAppMetrics(collector)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Optional infrastructure.  A component that fails to connect is logged
	// and skipped; the analysis API keeps working without it.
	serviceOpts := []assessment.Option{assessment.WithMetrics(metrics)}
	var checkers []handlers.HealthChecker

	conn, err := postgres.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.Warn("postgres unavailable, assessment history disabled", logging.Err(err))
	} else {
		defer conn.Close()
		if err := postgres.RunMigrations(cfg.Database.DSN(), "file://"+cfg.Database.MigrationPath); err != nil {
			logger.Error("database migration failed", logging.Err(err))
			os.Exit(1)
		}
		serviceOpts = append(serviceOpts, assessment.WithRepository(repositories.NewAssessmentRepository(conn.Pool(), logger)))
		checkers = append(checkers, handlers.HealthCheckFunc{ComponentName: "postgres", CheckFunc: conn.Ping})
	}

	redisClient, err := redis.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, assessment caching disabled", logging.Err(err))
	} else {
		defer redisClient.Close()
		cache := redis.NewCache(redisClient, logger,
			redis.WithPrefix(cfg.Redis.KeyPrefix),
			redis.WithDefaultTTL(cfg.Analysis.CacheTTL))
		serviceOpts = append(serviceOpts, assessment.WithCache(cache))
		checkers = append(checkers, handlers.HealthCheckFunc{ComponentName: "redis", CheckFunc: redisClient.Ping})
	}

	producer, err := kafka.NewProducer(cfg.Kafka, logger)
	if err != nil {
		logger.Warn("kafka unavailable, event publication disabled", logging.Err(err))
	} else {
		defer producer.Close()
		serviceOpts = append(serviceOpts, assessment.WithProducer(producer))
	}

	engine := nlp.NewEngine(logger,
		nlp.WithKeywordLimit(cfg.Analysis.KeywordLimit),
		nlp.WithMaxDocumentBytes(cfg.Analysis.MaxDocumentBytes))
	detector := clause.NewDetector(logger)
	scorer := risk.NewScorer(logger)
	service := assessment.NewService(engine, detector, scorer, cfg.Analysis, logger, serviceOpts...)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		AnalysisHandler:   handlers.NewAnalysisHandler(service, logger),
		HealthHandler:     handlers.NewHealthHandler(version, checkers...),
		CORSMiddleware:    middleware.NewCORSMiddleware(middleware.DefaultCORSConfig()),
		LoggingMiddleware: middleware.NewLoggingMiddleware(logger, middleware.DefaultLoggingConfig()),
		MetricsMiddleware: middleware.NewMetricsMiddleware(metrics),
		MetricsCollector:  collector,
	})
	srv := httpserver.NewServer(cfg.Server, router, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("HTTP server error", logging.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("HTTP server shutdown error", logging.Err(err))
	}
	logger.Info("server stopped")
}

// loadConfig loads configuration from file, returning an error if the file is
// missing so the caller can fall back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return config.Load(path)
}

//Personal.AI order the ending
