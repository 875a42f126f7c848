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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/daily-quote/internal/facades"
	"github.com/sbilibin2017/daily-quote/internal/handlers"
	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/middlewares"
	"github.com/sbilibin2017/daily-quote/internal/migrations"
	"github.com/sbilibin2017/daily-quote/internal/repositories"
	"github.com/sbilibin2017/daily-quote/internal/services"
	"github.com/sbilibin2017/daily-quote/internal/sessions"
	"github.com/sbilibin2017/daily-quote/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title daily-quote API
// @version 1.0.0
// @description Web application serving one motivational quote per user per day
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		quotesAPIURL, quotesAPIKey, quotesTimeoutSecond,
		sessionSecretKey, sessionTTLSecond,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		quotesAPIURL, quotesAPIKey, quotesTimeoutSecond,
		sessionSecretKey, sessionTTLSecond,
		kafkaAddr, kafkaTopic,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, provider, session, and Kafka configuration.
// The provider API key and the session secret have no defaults: secrets must
// come from the environment, never from source.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	quotesAPIURL, quotesAPIKey string, quotesTimeoutSecond int,
	sessionSecretKey string, sessionTTLSecond int,
	kafkaAddr, kafkaTopic string,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Quote provider config
	quotesAPIURL = getEnv("QUOTES_API_URL", "https://api.api-ninjas.com/v1/quotes")
	quotesAPIKey = os.Getenv("QUOTES_API_KEY")
	if quotesAPIKey == "" {
		err = fmt.Errorf("QUOTES_API_KEY must be set")
		return
	}
	if quotesTimeoutSecond, err = strconv.Atoi(getEnv("QUOTES_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Session config
	sessionSecretKey = os.Getenv("SESSION_SECRET_KEY")
	if sessionSecretKey == "" {
		err = fmt.Errorf("SESSION_SECRET_KEY must be set")
		return
	}
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}

	// Kafka config; empty address disables claim events
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "quote-claims")

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It runs migrations, sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	quotesAPIURL, quotesAPIKey string, quotesTimeoutSecond int,
	sessionSecretKey string, sessionTTLSecond int,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Run migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for claim events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka claim events enabled, topic %s", kafkaTopic)
	}

	// Initialize session manager
	sessionManager := sessions.New(rdb, sessionSecretKey, time.Duration(sessionTTLSecond)*time.Second)

	// Initialize quote provider facade
	providerClient := &http.Client{Timeout: time.Duration(quotesTimeoutSecond) * time.Second}
	quoteProvider := facades.NewQuoteAPIFacade(providerClient, quotesAPIURL, quotesAPIKey)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	historyReadRepo := repositories.NewQuoteHistoryReadRepository(db)
	historyWriteRepo := repositories.NewQuoteHistoryWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	quoteService := services.NewQuoteService(userReadRepo, historyReadRepo, historyWriteRepo, quoteProvider, kafkaWriter)

	// Initialize page renderer
	pages, err := web.NewRenderer()
	if err != nil {
		logger.Log.Fatal("failed to parse templates:", err)
	}

	// Initialize handlers
	welcomeHandler := handlers.NewWelcomeHandler(pages)
	loginHandler := handlers.NewLoginHandler(authService, sessionManager, pages)
	registerHandler := handlers.NewRegisterHandler(authService, sessionManager, pages)
	homeHandler := handlers.NewHomeHandler(quoteService, sessionManager, pages)
	getNewQuoteHandler := handlers.NewGetNewQuoteHandler(quoteService, sessionManager)
	previousQuotesHandler := handlers.NewPreviousQuotesHandler(quoteService, pages)
	logoutHandler := handlers.NewLogoutHandler(sessionManager)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	// Public routes
	r.Get("/", welcomeHandler)
	r.Post("/login", loginHandler)
	r.Get("/register", registerHandler)
	r.Post("/register", registerHandler)

	// Protected routes: anonymous requests are redirected to the welcome page
	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(sessionManager))
		r.Get("/home", homeHandler)
		r.Get("/get_new_quote", getNewQuoteHandler)
		r.Get("/previous_quotes", previousQuotesHandler)
		r.Get("/logout", logoutHandler)
	})

	r.Handle("/metrics", middlewares.MetricsHandler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
