package mentor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mentorhub/internal/moderation/models"
	"mentorhub/internal/sentinel"
)

// PostgresStore persists mentor profiles in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed mentor store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, mentor *models.Mentor) error {
	if mentor == nil {
		return fmt.Errorf("mentor is required")
	}
	query := `
		INSERT INTO mentors (id, user_id, email, name, approved, top_mentor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		mentor.ID,
		mentor.UserID,
		mentor.Email,
		mentor.Name,
		mentor.Approved,
		mentor.TopMentor,
		mentor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create mentor: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, mentor *models.Mentor) error {
	if mentor == nil {
		return fmt.Errorf("mentor is required")
	}
	query := `
		UPDATE mentors
		SET email = $2, name = $3, approved = $4, top_mentor = $5
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		mentor.ID,
		mentor.Email,
		mentor.Name,
		mentor.Approved,
		mentor.TopMentor,
	)
	if err != nil {
		return fmt.Errorf("save mentor: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save mentor: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mentor not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, mentorID uuid.UUID) (*models.Mentor, error) {
	query := `
		SELECT id, user_id, email, name, approved, top_mentor, created_at
		FROM mentors
		WHERE id = $1
	`
	return scanMentor(s.db.QueryRowContext(ctx, query, mentorID))
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Mentor, error) {
	query := `
		SELECT id, user_id, email, name, approved, top_mentor, created_at
		FROM mentors
		WHERE user_id = $1
	`
	return scanMentor(s.db.QueryRowContext(ctx, query, userID))
}

func (s *PostgresStore) Delete(ctx context.Context, mentorID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM mentors WHERE id = $1`, mentorID)
	if err != nil {
		return fmt.Errorf("delete mentor: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete mentor: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mentor not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func scanMentor(row *sql.Row) (*models.Mentor, error) {
	var mentor models.Mentor
	err := row.Scan(
		&mentor.ID,
		&mentor.UserID,
		&mentor.Email,
		&mentor.Name,
		&mentor.Approved,
		&mentor.TopMentor,
		&mentor.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mentor not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan mentor: %w", err)
	}
	return &mentor, nil
}
