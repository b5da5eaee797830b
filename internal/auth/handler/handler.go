// Package handler exposes the admin authentication endpoints: login,
// passcode verification, account creation, logout, and session introspection.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"mentorhub/internal/auth/models"
	"mentorhub/internal/platform/middleware"
	dErrors "mentorhub/pkg/domain-errors"
	"mentorhub/pkg/httputil"
	str "mentorhub/pkg/strings"
	"mentorhub/pkg/validation"
)

// Service defines the interface for authentication operations.
type Service interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResult, error)
	CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Profile, error)
}

type Handler struct {
	auth       Service
	logger     *slog.Logger
	sessionTTL time.Duration
}

// New creates an auth Handler. sessionTTL controls the session cookie's max
// age and defaults to 24 hours.
func New(auth Service, logger *slog.Logger, sessionTTL time.Duration) *Handler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &Handler{
		auth:       auth,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

// Register registers the auth routes with the chi router. None of these need
// the admin guard: whoAmI answers for anonymous callers too, and the rest are
// the way in.
func (h *Handler) Register(r chi.Router) {
	r.Get("/auth", h.HandleWhoAmI)
	r.Post("/login", h.HandleLogin)
	r.Post("/verify-otp", h.HandleVerifyOTP)
	r.Post("/create", h.HandleCreateAdmin)
	r.Post("/logout", h.HandleLogout)
}

// HandleWhoAmI implements GET /admin/auth. It reflects the principal the
// middleware resolved, if any, and never fails: no principal means a valid
// "not logged in" answer, not an error.
func (h *Handler) HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		httputil.WriteJSON(w, http.StatusOK, models.WhoAmIResult{IsLoggedIn: false})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.WhoAmIResult{
		IsLoggedIn: true,
		Admin:      &models.Profile{ID: principal.AdminID, Email: principal.Email},
	})
}

// HandleLogin implements POST /admin/login.
//
// Input: { "email": "...", "password": "..." }
// Output: { "message": "...", "email": "..." }
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}
	str.TrimStrings(&req.Email)
	if err := validation.Validate(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := h.auth.Login(ctx, &req)
	if err != nil {
		h.logger.WarnContext(ctx, "login rejected",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleVerifyOTP implements POST /admin/verify-otp. On success the session
// token is set as an http-only cookie; the body carries only the profile.
func (h *Handler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode verify-otp request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}
	str.TrimStrings(&req.Email, &req.OTP)
	if err := validation.Validate(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	res, err := h.auth.VerifyOTP(ctx, &req)
	if err != nil {
		h.logger.WarnContext(ctx, "otp verification rejected",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    res.SessionToken,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteStrictMode,
	})

	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleCreateAdmin implements POST /admin/create.
func (h *Handler) HandleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create-admin request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}
	str.TrimStrings(&req.Email)
	if err := validation.Validate(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	if _, err := h.auth.CreateAdmin(ctx, &req); err != nil {
		h.logger.ErrorContext(ctx, "create admin failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Admin account created",
	})
}

// HandleLogout implements POST /admin/logout. There is no server-side session
// state to revoke; clearing the cookie is the whole operation, so it is
// idempotent and succeeds regardless of prior state.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteStrictMode,
	})

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// isHTTPS reports whether the request arrived over TLS, directly or through a
// terminating proxy.
func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
