package models

// ActionResult is the common moderation response shape.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BannerResult returns the banner now active after a replace.
type BannerResult struct {
	Success bool    `json:"success"`
	Banner  *Banner `json:"banner"`
}
