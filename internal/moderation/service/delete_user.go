package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mentorhub/internal/audit"
	"mentorhub/internal/moderation/models"
	"mentorhub/internal/notifier"
	"mentorhub/internal/sentinel"
	dErrors "mentorhub/pkg/domain-errors"
)

// DeleteUser removes a user account and, when one exists, the linked mentor
// profile. The cascade is the same as a mentor rejection; only the email
// template differs.
func (s *Service) DeleteUser(ctx context.Context, rawID string) (*models.ActionResult, error) {
	userID, err := parseSubjectID(rawID, "user")
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup user")
	}

	// Not every user has a mentor profile; absence just shrinks the cascade.
	mentorID := uuid.Nil
	if mentor, err := s.mentors.FindByUserID(ctx, userID); err == nil {
		mentorID = mentor.ID
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup mentor profile")
	}

	err = s.run(ctx, "delete_user", user.ID.String(),
		func(ctx context.Context) error {
			if err := s.cascadeDelete(ctx, user.ID, mentorID); err != nil {
				return err
			}
			s.logAudit(ctx, string(audit.EventUserDeleted), user.ID.String(),
				"email", user.Email,
			)
			return nil
		},
		func(ctx context.Context) error {
			return s.notifier.Send(ctx, notifier.Message{
				To:       user.Email,
				Template: notifier.TemplateAccountDeleted,
				Vars:     map[string]string{"name": user.Name},
			})
		},
	)
	if err != nil {
		return nil, err
	}
	return &models.ActionResult{Success: true, Message: "User deleted"}, nil
}
