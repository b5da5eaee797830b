package service

import (
	"context"

	"mentorhub/internal/audit"
	"mentorhub/internal/moderation/models"
	"mentorhub/internal/notifier"
	dErrors "mentorhub/pkg/domain-errors"
)

// ApproveMentor marks a mentor application as approved and emails the mentor.
func (s *Service) ApproveMentor(ctx context.Context, rawID string) (*models.ActionResult, error) {
	mentor, err := s.resolveMentor(ctx, rawID)
	if err != nil {
		return nil, err
	}

	err = s.run(ctx, "approve_mentor", mentor.ID.String(),
		func(ctx context.Context) error {
			mentor.Approved = true
			if err := s.mentors.Save(ctx, mentor); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to approve mentor")
			}
			s.logAudit(ctx, string(audit.EventMentorApproved), mentor.ID.String(),
				"email", mentor.Email,
			)
			return nil
		},
		func(ctx context.Context) error {
			return s.notifier.Send(ctx, notifier.Message{
				To:       mentor.Email,
				Template: notifier.TemplateMentorApproved,
				Vars:     map[string]string{"name": mentor.Name},
			})
		},
	)
	if err != nil {
		return nil, err
	}
	return &models.ActionResult{Success: true, Message: "Mentor application approved"}, nil
}
