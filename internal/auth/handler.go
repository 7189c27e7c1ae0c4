package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freightdesk/freightdesk/internal/platform/httpx"
	"github.com/freightdesk/freightdesk/internal/shared"
)

// Handler serves login, logout and current-user endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	sessions *shared.SessionManager
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, sessions *shared.SessionManager) *Handler {
	return &Handler{logger: logger, service: service, sessions: sessions}
}

// MountRoutes registers auth routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Get("/me", h.me)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	if err := shared.Validate(req); err != nil {
		var verr *shared.ValidationError
		if errors.As(err, &verr) {
			httpx.FieldProblem(w, "login request invalid", verr.Fields)
			return
		}
		httpx.RespondError(w, err)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("login rejected", slog.String("email", req.Email))
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid credentials")
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("issue session", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.sessions.SetCookie(w, token)
	httpx.JSON(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Revoke(r.Context(), r); err != nil {
		h.logger.Warn("revoke session", slog.Any("error", err))
	}
	h.sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID := shared.UserIDFromContext(r.Context())
	if userID == 0 {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "not logged in")
		return
	}
	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "account no longer exists")
			return
		}
		h.logger.Error("load current user", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// RequireAuth resolves the session cookie and stores the user id on the
// request context, rejecting unauthenticated calls.
func RequireAuth(sessions *shared.SessionManager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.Resolve(r.Context(), r)
			if err != nil {
				if !errors.Is(err, shared.ErrSessionExpired) {
					logger.Error("resolve session", slog.Any("error", err))
				}
				httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "login required")
				return
			}
			next.ServeHTTP(w, r.WithContext(shared.ContextWithUserID(r.Context(), userID)))
		})
	}
}
