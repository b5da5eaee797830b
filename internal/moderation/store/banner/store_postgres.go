package banner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mentorhub/internal/moderation/models"
	"mentorhub/internal/sentinel"
)

// PostgresStore persists the site banner in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed banner store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Replace deletes every existing banner and inserts the given one inside a
// single transaction, so readers never observe zero or two banners.
func (s *PostgresStore) Replace(ctx context.Context, banner *models.Banner) error {
	if banner == nil {
		return fmt.Errorf("banner is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin banner replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM banners`); err != nil {
		return fmt.Errorf("clear banners: %w", err)
	}

	query := `
		INSERT INTO banners (id, title, body, image_url, target_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, query,
		banner.ID,
		banner.Title,
		banner.Body,
		banner.ImageURL,
		banner.TargetURL,
		banner.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit banner replace: %w", err)
	}
	return nil
}

func (s *PostgresStore) Active(ctx context.Context) (*models.Banner, error) {
	query := `
		SELECT id, title, body, image_url, target_url, created_at
		FROM banners
		ORDER BY created_at DESC
		LIMIT 1
	`
	var banner models.Banner
	err := s.db.QueryRowContext(ctx, query).Scan(
		&banner.ID,
		&banner.Title,
		&banner.Body,
		&banner.ImageURL,
		&banner.TargetURL,
		&banner.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("banner not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find active banner: %w", err)
	}
	return &banner, nil
}
