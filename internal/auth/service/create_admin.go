package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mentorhub/internal/audit"
	"mentorhub/internal/auth/models"
	"mentorhub/internal/sentinel"
	dErrors "mentorhub/pkg/domain-errors"
	"mentorhub/pkg/secrets"
)

// CreateAdmin provisions a new admin account with a hashed password.
func (s *Service) CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Profile, error) {
	hash, err := secrets.HashPassword(req.Password)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	account := &models.AdminAccount{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.admins.Create(ctx, account); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "An admin with this email already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create admin account")
	}

	s.logAudit(ctx, string(audit.EventAdminCreated), account.ID.String(),
		"email", account.Email,
	)

	profile := account.Profile()
	return &profile, nil
}
