// Package handler exposes the moderation workflows over HTTP. All routes are
// mounted behind the admin session guard.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mentorhub/internal/moderation/models"
	"mentorhub/internal/platform/middleware"
	dErrors "mentorhub/pkg/domain-errors"
	"mentorhub/pkg/httputil"
	s "mentorhub/pkg/strings"
	"mentorhub/pkg/validation"
)

// Service defines the interface for moderation operations.
type Service interface {
	ApproveMentor(ctx context.Context, rawID string) (*models.ActionResult, error)
	RejectMentor(ctx context.Context, rawID string) (*models.ActionResult, error)
	DeleteUser(ctx context.Context, rawID string) (*models.ActionResult, error)
	ChangeTopMentorStatus(ctx context.Context, rawID string) (*models.ActionResult, error)
	ModifyBanner(ctx context.Context, req *models.BannerRequest) (*models.BannerResult, error)
}

type Handler struct {
	moderation Service
	logger     *slog.Logger
}

// New creates a moderation Handler with the given service and logger.
func New(moderation Service, logger *slog.Logger) *Handler {
	return &Handler{
		moderation: moderation,
		logger:     logger,
	}
}

// Register registers the moderation routes with the chi router. The parent
// router applies the admin session guard.
func (h *Handler) Register(r chi.Router) {
	r.Post("/mentor/approve", h.HandleApproveMentor)
	r.Delete("/mentor/reject", h.HandleRejectMentor)
	r.Get("/mentor/reject", h.HandleRejectMentor)
	r.Post("/mentor/top", h.HandleTopMentor)
	r.Delete("/user/{user_id}", h.HandleDeleteUser)
	r.Put("/banner", h.HandleBanner)
}

// HandleApproveMentor implements POST /admin/mentor/approve.
//
// Input: { "id": "<mentor uuid>" }
// Output: { "success": true, "message": "..." }
func (h *Handler) HandleApproveMentor(w http.ResponseWriter, r *http.Request) {
	h.mentorAction(w, r, "approve mentor", h.moderation.ApproveMentor)
}

// HandleTopMentor implements POST /admin/mentor/top. Toggles the top-mentor
// flag on the identified mentor.
func (h *Handler) HandleTopMentor(w http.ResponseWriter, r *http.Request) {
	h.mentorAction(w, r, "change top mentor status", h.moderation.ChangeTopMentorStatus)
}

// mentorAction is the shared body-decode path for actions addressed by a
// mentor id in the request body.
func (h *Handler) mentorAction(w http.ResponseWriter, r *http.Request, name string, action func(context.Context, string) (*models.ActionResult, error)) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.MentorActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode request",
			"operation", name,
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}
	s.TrimStrings(&req.ID)
	if err := validation.Validate(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := action(ctx, req.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, name+" failed",
			"error", err,
			"mentor_id", req.ID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleRejectMentor implements DELETE (and legacy GET) /admin/mentor/reject?id=.
func (h *Handler) HandleRejectMentor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rawID := r.URL.Query().Get("id")

	res, err := h.moderation.RejectMentor(ctx, rawID)
	if err != nil {
		h.logger.ErrorContext(ctx, "reject mentor failed",
			"error", err,
			"mentor_id", rawID,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleDeleteUser implements DELETE /admin/user/{user_id}.
func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rawID := chi.URLParam(r, "user_id")

	res, err := h.moderation.DeleteUser(ctx, rawID)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete user failed",
			"error", err,
			"user_id", rawID,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleBanner implements PUT /admin/banner. Replace-all semantics: the
// submitted banner becomes the only one.
func (h *Handler) HandleBanner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode banner request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}
	s.TrimStrings(&req.Title, &req.Body, &req.ImageURL, &req.TargetURL)
	if err := validation.Validate(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := h.moderation.ModifyBanner(ctx, &req)
	if err != nil {
		h.logger.ErrorContext(ctx, "modify banner failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}
