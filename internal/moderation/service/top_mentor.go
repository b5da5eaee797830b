package service

import (
	"context"

	"mentorhub/internal/audit"
	"mentorhub/internal/moderation/models"
	"mentorhub/internal/notifier"
	dErrors "mentorhub/pkg/domain-errors"
)

// ChangeTopMentorStatus toggles the top-mentor flag. Applying it twice
// restores the original value.
func (s *Service) ChangeTopMentorStatus(ctx context.Context, rawID string) (*models.ActionResult, error) {
	mentor, err := s.resolveMentor(ctx, rawID)
	if err != nil {
		return nil, err
	}

	mentor.TopMentor = !mentor.TopMentor
	status := "disabled"
	if mentor.TopMentor {
		status = "enabled"
	}

	err = s.run(ctx, "top_mentor", mentor.ID.String(),
		func(ctx context.Context) error {
			if err := s.mentors.Save(ctx, mentor); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update top mentor status")
			}
			s.logAudit(ctx, string(audit.EventTopMentorToggled), mentor.ID.String(),
				"email", mentor.Email,
				"top_mentor", mentor.TopMentor,
			)
			return nil
		},
		func(ctx context.Context) error {
			return s.notifier.Send(ctx, notifier.Message{
				To:       mentor.Email,
				Template: notifier.TemplateTopMentor,
				Vars:     map[string]string{"name": mentor.Name, "status": status},
			})
		},
	)
	if err != nil {
		return nil, err
	}
	return &models.ActionResult{Success: true, Message: "Top mentor status " + status}, nil
}
