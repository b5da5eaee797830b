package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"mentorhub/internal/auth/models"
	"mentorhub/internal/sentinel"
)

// PostgresStore persists admin accounts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed admin store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, account *models.AdminAccount) error {
	if account == nil {
		return fmt.Errorf("account is required")
	}
	query := `
		INSERT INTO admin_accounts (id, email, password_hash, otp_hash, otp_expires_at, otp_consumed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.OTPHash,
		nullTime(account.OTPExpiresAt),
		account.OTPConsumed,
		account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("admin email taken: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, account *models.AdminAccount) error {
	if account == nil {
		return fmt.Errorf("account is required")
	}
	query := `
		UPDATE admin_accounts
		SET email = $2, password_hash = $3, otp_hash = $4, otp_expires_at = $5, otp_consumed = $6
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.OTPHash,
		nullTime(account.OTPExpiresAt),
		account.OTPConsumed,
	)
	if err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, adminID uuid.UUID) (*models.AdminAccount, error) {
	query := `
		SELECT id, email, password_hash, otp_hash, otp_expires_at, otp_consumed, created_at
		FROM admin_accounts
		WHERE id = $1
	`
	return scanAdmin(s.db.QueryRowContext(ctx, query, adminID))
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	query := `
		SELECT id, email, password_hash, otp_hash, otp_expires_at, otp_consumed, created_at
		FROM admin_accounts
		WHERE lower(email) = lower($1)
	`
	return scanAdmin(s.db.QueryRowContext(ctx, query, email))
}

func scanAdmin(row *sql.Row) (*models.AdminAccount, error) {
	var account models.AdminAccount
	var otpExpiresAt sql.NullTime
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.OTPHash,
		&otpExpiresAt,
		&account.OTPConsumed,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	if otpExpiresAt.Valid {
		account.OTPExpiresAt = otpExpiresAt.Time
	}
	return &account, nil
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
