package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
)

// ErrDuplicateEmail reports a unique-constraint violation on the email.
// Only a concurrent insert race can trigger it: the upsert path updates
// existing rows instead.
var ErrDuplicateEmail = errors.New("email already registered")

const pgUniqueViolation = "23505"

// UserReadRepository provides read access to demo_users.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `
	user_id, full_name, email, password_hash, phone, city, country, state,
	interests, account_type, bio, business_name, business_website,
	business_address, business_phone, business_description,
	business_categories, sms_notifications, email_updates, terms_accepted,
	early_supporter, signup_date, created_at, launch_notified,
	demo_access_granted
`

// GetByEmail looks a user up by case-insensitive email. Returns nil without
// error when no row matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT` + userColumns + `FROM demo_users WHERE LOWER(email) = LOWER($1)`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByCredentials matches a case-insensitive email plus the exact password
// digest. Returns nil without error when the pair matches nothing.
func (r *UserReadRepository) GetByCredentials(ctx context.Context, email, passwordHash string) (*models.UserDB, error) {
	query := `SELECT` + userColumns + `FROM demo_users
		WHERE LOWER(email) = LOWER($1) AND password_hash = $2`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, passwordHash)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Stats aggregates signup counts for the admin dashboard.
func (r *UserReadRepository) Stats(ctx context.Context) (*models.DemoStats, error) {
	stats := &models.DemoStats{}

	if err := r.db.GetContext(ctx, &stats.TotalUsers,
		`SELECT COUNT(*) FROM demo_users`); err != nil {
		return nil, err
	}

	if err := r.db.GetContext(ctx, &stats.EarlySupporters,
		`SELECT COUNT(*) FROM demo_users WHERE early_supporter`); err != nil {
		return nil, err
	}

	query := `
		SELECT city, COUNT(*) AS users
		FROM demo_users
		GROUP BY city
		ORDER BY COUNT(*) DESC
		LIMIT 10
	`
	if err := r.db.SelectContext(ctx, &stats.Cities, query); err != nil {
		return nil, err
	}

	logger.Log.Infow("user stats",
		"total", stats.TotalUsers,
		"early_supporters", stats.EarlySupporters,
		"cities", len(stats.Cities),
	)

	return stats, nil
}

// ListLaunchCandidates returns users in a city who opted into SMS and have
// not yet received a go-live notification.
func (r *UserReadRepository) ListLaunchCandidates(ctx context.Context, city string) ([]models.LaunchCandidate, error) {
	query := `
		SELECT full_name, phone
		FROM demo_users
		WHERE city ILIKE $1 AND sms_notifications AND NOT launch_notified
	`

	var out []models.LaunchCandidate
	err := r.db.SelectContext(ctx, &out, query, "%"+city+"%")

	logger.Log.Infow("launch candidates",
		"query", strings.Join(strings.Fields(query), " "),
		"city", city,
		"count", len(out),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetLaunchCandidateByPhone returns a single not-yet-notified user by phone,
// or nil when none qualifies.
func (r *UserReadRepository) GetLaunchCandidateByPhone(ctx context.Context, phoneNumber string) (*models.LaunchCandidate, error) {
	query := `
		SELECT full_name, phone
		FROM demo_users
		WHERE phone = $1 AND sms_notifications AND NOT launch_notified
	`

	var c models.LaunchCandidate
	err := r.db.GetContext(ctx, &c, query, phoneNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UserWriteRepository provides write access to demo_users.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Upsert inserts a new user or overwrites the mutable profile fields of an
// existing one, keyed by case-insensitive email. The existing user_id is
// preserved on the update path; u.UserID is only used for inserts. Returns
// the effective user id and whether a new row was created.
func (r *UserWriteRepository) Upsert(ctx context.Context, u models.UserDB) (string, bool, error) {
	var existingID string
	err := r.db.GetContext(ctx, &existingID,
		`SELECT user_id FROM demo_users WHERE LOWER(email) = LOWER($1)`, u.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", false, err
	}

	if err == nil {
		query := `
			UPDATE demo_users SET
				password_hash = $1, phone = $2, full_name = $3, country = $4,
				state = $5, city = $6, interests = $7, business_name = $8,
				business_website = $9, business_address = $10,
				business_phone = $11, business_description = $12, bio = $13,
				business_categories = $14, account_type = $15
			WHERE LOWER(email) = LOWER($16)
		`
		args := []any{
			u.PasswordHash, u.Phone, u.FullName, u.Country, u.State, u.City,
			u.Interests, u.BusinessName, u.BusinessWebsite, u.BusinessAddress,
			u.BusinessPhone, u.BusinessDescription, u.Bio,
			u.BusinessCategories, u.AccountType, u.Email,
		}

		res, execErr := r.db.ExecContext(ctx, query, args...)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}

		logger.Log.Infow("user update",
			"query", strings.Join(strings.Fields(query), " "),
			"email", u.Email,
			"rows", rowsAffected,
			"error", execErr,
		)

		if execErr != nil {
			return "", false, execErr
		}
		return existingID, false, nil
	}

	query := `
		INSERT INTO demo_users
			(user_id, full_name, email, password_hash, phone, country, state,
			 city, interests, account_type, bio, business_name,
			 business_website, business_address, business_phone,
			 business_description, business_categories, sms_notifications,
			 email_updates, terms_accepted, early_supporter, signup_date,
			 demo_access_granted)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			 $15, $16, $17, $18, $19, $20, $21, NOW(), $22)
	`
	args := []any{
		u.UserID, u.FullName, u.Email, u.PasswordHash, u.Phone, u.Country,
		u.State, u.City, u.Interests, u.AccountType, u.Bio, u.BusinessName,
		u.BusinessWebsite, u.BusinessAddress, u.BusinessPhone,
		u.BusinessDescription, u.BusinessCategories, u.SMSNotifications,
		u.EmailUpdates, u.TermsAccepted, u.EarlySupporter,
		u.DemoAccessGranted,
	}

	_, err = r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"email", u.Email,
		"user_id", u.UserID,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", false, ErrDuplicateEmail
		}
		return "", false, err
	}
	return u.UserID, true, nil
}

// UpdatePassword overwrites the password digest for an email.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE demo_users SET password_hash = $1 WHERE LOWER(email) = LOWER($2)`

	res, err := r.db.ExecContext(ctx, query, passwordHash, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("password update",
		"email", email,
		"rows", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteByEmail removes a user row and reports how many rows went away.
func (r *UserWriteRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM demo_users WHERE LOWER(email) = LOWER($1)`, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteAll clears the whole table. Administrative use only.
func (r *UserWriteRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM demo_users`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MarkLaunchNotified records that the go-live text reached a phone number.
func (r *UserWriteRepository) MarkLaunchNotified(ctx context.Context, phoneNumber string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE demo_users SET launch_notified = TRUE WHERE phone = $1`, phoneNumber)
	return err
}
