package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mentorhub/internal/audit"
	"mentorhub/internal/moderation/models"
	"mentorhub/internal/notifier"
	"mentorhub/internal/sentinel"
	dErrors "mentorhub/pkg/domain-errors"
)

// RejectMentor removes a rejected applicant entirely: the user record and the
// linked mentor profile are deleted concurrently, then the applicant is told
// by email.
func (s *Service) RejectMentor(ctx context.Context, rawID string) (*models.ActionResult, error) {
	mentor, err := s.resolveMentor(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = s.run(ctx, "reject_mentor", mentor.ID.String(),
		func(ctx context.Context) error {
			if err := s.cascadeDelete(ctx, mentor.UserID, mentor.ID); err != nil {
				return err
			}
			s.logAudit(ctx, string(audit.EventMentorRejected), mentor.ID.String(),
				"email", mentor.Email,
			)
			return nil
		},
		func(ctx context.Context) error {
			return s.notifier.Send(ctx, notifier.Message{
				To:       mentor.Email,
				Template: notifier.TemplateMentorRejected,
				Vars:     map[string]string{"name": mentor.Name},
			})
		},
	)
	if err != nil {
		return nil, err
	}
	return &models.ActionResult{Success: true, Message: "Mentor application rejected"}, nil
}

// cascadeDelete removes a user record and a mentor profile concurrently.
// There is no ordering dependency between the two deletions, but both must
// complete before the caller moves on to notification. A record that is
// already gone does not fail the cascade.
func (s *Service) cascadeDelete(ctx context.Context, userID, mentorID uuid.UUID) error {
	g, ctx := errgroup.WithContext(ctx)

	if userID != uuid.Nil {
		g.Go(func() error {
			if err := s.users.Delete(ctx, userID); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete user")
			}
			return nil
		})
	}
	if mentorID != uuid.Nil {
		g.Go(func() error {
			if err := s.mentors.Delete(ctx, mentorID); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete mentor profile")
			}
			return nil
		})
	}
	return g.Wait()
}
