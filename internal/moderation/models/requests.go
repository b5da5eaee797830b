package models

// MentorActionRequest carries the mentor identifier for approve and
// top-mentor requests.
type MentorActionRequest struct {
	ID string `json:"id" validate:"required,notblank"`
}

// BannerRequest replaces the active site banner.
type BannerRequest struct {
	Title     string `json:"title" validate:"required,notblank"`
	Body      string `json:"body" validate:"required,notblank"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	TargetURL string `json:"target_url" validate:"omitempty,url"`
}
