package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mentorhub/internal/audit"
	"mentorhub/internal/moderation/models"
	dErrors "mentorhub/pkg/domain-errors"
)

// ModifyBanner replaces the site banner. Replace-all semantics: whatever was
// there before is gone, the new banner is the only one. Nobody is emailed
// about a banner change.
func (s *Service) ModifyBanner(ctx context.Context, req *models.BannerRequest) (*models.BannerResult, error) {
	banner := &models.Banner{
		ID:        uuid.New(),
		Title:     req.Title,
		Body:      req.Body,
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		CreatedAt: time.Now(),
	}

	err := s.run(ctx, "modify_banner", banner.ID.String(),
		func(ctx context.Context) error {
			if err := s.banners.Replace(ctx, banner); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to replace banner")
			}
			s.logAudit(ctx, string(audit.EventBannerReplaced), banner.ID.String(),
				"title", banner.Title,
			)
			return nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &models.BannerResult{Success: true, Banner: banner}, nil
}
