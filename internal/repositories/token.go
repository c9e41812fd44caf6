package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
)

// TokenReadRepository provides read access to password_reset_tokens.
type TokenReadRepository struct {
	db *sqlx.DB
}

func NewTokenReadRepository(db *sqlx.DB) *TokenReadRepository {
	return &TokenReadRepository{db: db}
}

// GetActive returns the most recently created unused token matching the
// email and code, or nil when none matches. Expiry is checked by the caller
// so it can tell the user "expired" apart from "wrong code".
func (r *TokenReadRepository) GetActive(ctx context.Context, email, code string) (*models.ResetTokenDB, error) {
	query := `
		SELECT id, email, reset_code, method, created_at, expires_at, used
		FROM password_reset_tokens
		WHERE email = $1 AND reset_code = $2 AND NOT used
		ORDER BY created_at DESC
		LIMIT 1
	`

	var token models.ResetTokenDB
	err := r.db.GetContext(ctx, &token, query, email, code)

	logger.Log.Infow("token query",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// TokenWriteRepository provides write access to password_reset_tokens.
type TokenWriteRepository struct {
	db *sqlx.DB
}

func NewTokenWriteRepository(db *sqlx.DB) *TokenWriteRepository {
	return &TokenWriteRepository{db: db}
}

// Create issues a new token, superseding any unused tokens for the same
// email. Delete and insert run in one transaction so a single request never
// leaves more than one unused token behind.
func (r *TokenWriteRepository) Create(ctx context.Context, email, code, method string, expiresAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE email = $1 AND NOT used`,
		email); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO password_reset_tokens (email, reset_code, method, expires_at)
		VALUES ($1, $2, $3, $4)`,
		email, code, method, expiresAt); err != nil {
		return err
	}

	err = tx.Commit()

	logger.Log.Infow("token created",
		"email", email,
		"method", method,
		"expires_at", expiresAt,
		"error", err,
	)

	return err
}

// Consume marks a token used and overwrites the account's password digest in
// the same transaction. Either both writes land or neither does.
func (r *TokenWriteRepository) Consume(ctx context.Context, tokenID int64, email, passwordHash string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE demo_users SET password_hash = $1 WHERE LOWER(email) = LOWER($2)`,
		passwordHash, email); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE password_reset_tokens SET used = TRUE WHERE id = $1`,
		tokenID); err != nil {
		return err
	}

	err = tx.Commit()

	logger.Log.Infow("token consumed",
		"token_id", tokenID,
		"email", email,
		"error", err,
	)

	return err
}

// DeleteExpired purges tokens past their expiry, used or not. Idempotent.
func (r *TokenWriteRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}

	deleted, err := res.RowsAffected()

	logger.Log.Infow("expired tokens purged", "deleted", deleted, "error", err)

	return deleted, err
}

// DeleteByEmail removes every token for an email, used or not.
func (r *TokenWriteRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE email = $1`, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
