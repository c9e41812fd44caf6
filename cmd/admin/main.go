// Command admin runs one-shot maintenance tasks against the demo-accounts
// database: statistics, account clearing, token cleanup and launch
// notifications.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/migrations"
	"github.com/marketpace/demo-accounts/internal/notifications"
	"github.com/marketpace/demo-accounts/internal/repositories"
	"github.com/marketpace/demo-accounts/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	action := flag.String("action", "stats", "One of: stats, clear-user, clear-all, cleanup-tokens, notify-launch")
	email := flag.String("email", "", "Email for clear-user")
	city := flag.String("city", "", "City filter for notify-launch")
	phoneNumber := flag.String("phone", "", "Single phone number for notify-launch")
	flag.Parse()

	if err := run(context.Background(), *configPath, *action, *email, *city, *phoneNumber); err != nil {
		log.Fatalf("admin action failed: %v", err)
	}
}

func run(ctx context.Context, configPath, action, email, city, phoneNumber string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "warn")); err != nil {
		return err
	}
	defer logger.Sync()

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return err
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "marketpace"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return err
	}
	notifier := notifications.New(notifications.Config{
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         smtpPort,
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailFrom:        getEnv("EMAIL_FROM", "noreply@marketpace.shop"),
	})

	svc := services.NewAdminService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db),
		repositories.NewTokenWriteRepository(db),
		notifier,
	)

	out, err := dispatch(ctx, svc, action, email, city, phoneNumber)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// dispatch maps an action name to the service call and shapes the result for
// JSON output.
func dispatch(ctx context.Context, svc *services.AdminService, action, email, city, phoneNumber string) (any, error) {
	switch action {
	case "stats":
		return svc.Stats(ctx)

	case "clear-user":
		if email == "" {
			return nil, fmt.Errorf("clear-user requires -email")
		}
		usersDeleted, tokensDeleted, err := svc.ClearUser(ctx, email)
		if err != nil {
			return nil, err
		}
		return map[string]int64{
			"users_deleted":  usersDeleted,
			"tokens_deleted": tokensDeleted,
		}, nil

	case "clear-all":
		deleted, err := svc.ClearAll(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]int64{"users_deleted": deleted}, nil

	case "cleanup-tokens":
		deleted, err := svc.CleanupTokens(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]int64{"tokens_deleted": deleted}, nil

	case "notify-launch":
		if city == "" && phoneNumber == "" {
			return nil, fmt.Errorf("notify-launch requires -city or -phone")
		}
		notified, err := svc.NotifyLaunch(ctx, city, phoneNumber)
		if err != nil {
			return nil, err
		}
		return map[string]int{"notified": notified}, nil

	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}
