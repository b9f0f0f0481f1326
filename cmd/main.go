package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	_ "github.com/sbilibin2017/gw-spending-analytics/docs"
	"github.com/sbilibin2017/gw-spending-analytics/internal/handlers"
	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/middlewares"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
	"github.com/sbilibin2017/gw-spending-analytics/internal/repositories"
	"github.com/sbilibin2017/gw-spending-analytics/internal/services"
	"github.com/sbilibin2017/gw-spending-analytics/internal/storage"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-spending-analytics API
// @version 1.0.0
// @description Spending analytics over user profiles and spending records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFormat,
		dbDriver, pgHost, pgPort, pgUser, pgPassword, pgDB, sqlitePath,
		dbMaxOpenConns, dbMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExp,
		kafkaBrokers, kafkaTopic,
		threshold,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logFormat,
		dbDriver, pgHost, pgPort, pgUser, pgPassword, pgDB, sqlitePath,
		dbMaxOpenConns, dbMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExp,
		kafkaBrokers, kafkaTopic,
		threshold,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka and promotion configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logFormat string,
	dbDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	sqlitePath string,
	dbMaxOpenConns, dbMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	threshold decimal.Decimal,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFormat = getEnv("APP_LOG_FORMAT", "json")

	// Database config
	dbDriver = getEnv("DB_DRIVER", storage.DriverPostgres)
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	sqlitePath = getEnv("SQLITE_PATH", "users_spending.db")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, an empty host disables the report cache
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config, no brokers disables promotion events
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			kafkaBrokers = append(kafkaBrokers, broker)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "high-spenders")

	// Promotion config
	if threshold, err = decimal.NewFromString(getEnv("PROMOTION_THRESHOLD", models.DefaultPromotionThreshold.String())); err != nil {
		err = fmt.Errorf("invalid PROMOTION_THRESHOLD: %w", err)
		return
	}

	return
}

// run initializes the logger, database, optional Redis cache and Kafka writer,
// and the HTTP server. It sets up routes and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logFormat string,
	dbDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	sqlitePath string,
	dbMaxOpenConns, dbMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	threshold decimal.Decimal,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to the record store
	dsn := sqlitePath
	if dbDriver == storage.DriverPostgres {
		dsn = storage.PostgresDSN(pgHost, pgPort, pgUser, pgPassword, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)
	} else {
		logger.Log.Infof("Opening %s database %s", dbDriver, sqlitePath)
	}

	db, err := storage.Open(ctx, dbDriver, dsn, dbMaxOpenConns, dbMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.Bootstrap(ctx, db); err != nil {
		return err
	}

	// Connect to Redis
	var cache services.AgeReportCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewAgeReportCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
		logger.Log.Infof("Age report cache enabled at %s:%d", redisHost, redisPort)
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infof("Promotion events enabled on topic %s", kafkaTopic)
	}

	r := newRouter(db, cache, kafkaWriter, threshold,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers on top of db.
// cache and kafkaWriter may be nil.
func newRouter(
	db *sqlx.DB,
	cache services.AgeReportCache,
	kafkaWriter services.KafkaWriter,
	threshold decimal.Decimal,
	swaggerURL string,
) http.Handler {
	// Initialize repositories
	spendingReadRepo := repositories.NewSpendingReadRepository(db, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	highSpenderWriteRepo := repositories.NewHighSpenderWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	analyticsService := services.NewAnalyticsService(spendingReadRepo, cache, models.DefaultAgeBuckets)
	promotionService := services.NewPromotionService(highSpenderWriteRepo, threshold, kafkaWriter, middlewares.AfterCommit)

	// Initialize handlers
	totalSpentHandler := handlers.NewTotalSpentHandler(analyticsService)
	averageSpendingHandler := handlers.NewAverageSpendingByAgeHandler(analyticsService)
	writeHighSpendersHandler := handlers.NewWriteHighSpendersHandler(promotionService)
	allUsersHandler := handlers.NewAllUsersHandler(userReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Get("/total_spent/{"+handlers.UserIDParam+":[0-9]+}", totalSpentHandler)
		r.Get("/average_spending_by_age", averageSpendingHandler)
		r.Post("/write_high_spenders", writeHighSpendersHandler)
		r.Get("/all_users", allUsersHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
