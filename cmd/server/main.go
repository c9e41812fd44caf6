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

	"github.com/marketpace/demo-accounts/internal/handlers"
	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/middlewares"
	"github.com/marketpace/demo-accounts/internal/migrations"
	"github.com/marketpace/demo-accounts/internal/notifications"
	"github.com/marketpace/demo-accounts/internal/repositories"
	"github.com/marketpace/demo-accounts/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title MarketPace demo accounts API
// @version 1.0.0
// @description Demo account signups, credential login and password resets for the MarketPace pre-launch campaign
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		notifyCfg,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		notifyCfg,
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
// application, database and delivery configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	notifyCfg notifications.Config,
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
	pgDB = getEnv("POSTGRES_DB", "marketpace")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Delivery config. Empty values leave the channel in log-only mode.
	notifyCfg.TwilioAccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	notifyCfg.TwilioAuthToken = getEnv("TWILIO_AUTH_TOKEN", "")
	notifyCfg.TwilioFromNumber = getEnv("TWILIO_FROM_NUMBER", "")
	notifyCfg.SMTPHost = getEnv("SMTP_HOST", "")
	if notifyCfg.SMTPPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return
	}
	notifyCfg.SMTPUser = getEnv("SMTP_USER", "")
	notifyCfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	notifyCfg.EmailFrom = getEnv("EMAIL_FROM", "noreply@marketpace.shop")

	return
}

// run initializes the logger, database, notifier and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	notifyCfg notifications.Config,
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
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

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

	// Apply migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Initialize delivery channels
	notifier := notifications.New(notifyCfg)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tokenReadRepo := repositories.NewTokenReadRepository(db)
	tokenWriteRepo := repositories.NewTokenWriteRepository(db)

	// Initialize services
	signupService := services.NewSignupService(userWriteRepo, notifier)
	authService := services.NewAuthService(userReadRepo)
	resetService := services.NewResetService(userReadRepo, tokenReadRepo, tokenWriteRepo, notifier)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, tokenWriteRepo, notifier)

	// Initialize handlers
	signupHandler := handlers.NewSignupHandler(signupService)
	loginHandler := handlers.NewLoginHandler(authService)
	resetRequestHandler := handlers.NewResetRequestHandler(resetService)
	resetVerifyHandler := handlers.NewResetVerifyHandler(resetService)
	resetConfirmHandler := handlers.NewResetConfirmHandler(resetService)
	statsHandler := handlers.NewStatsHandler(adminService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Post("/api/signup", signupHandler)
	r.Post("/api/demo-login", loginHandler)
	r.Post("/api/password-reset/request", resetRequestHandler)
	r.Post("/api/password-reset/verify", resetVerifyHandler)
	r.Post("/api/password-reset/confirm", resetConfirmHandler)
	r.Get("/api/demo-stats", statsHandler)

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
