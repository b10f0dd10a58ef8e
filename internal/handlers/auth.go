package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"serenityplace/internal/auth"
	"serenityplace/internal/errs"
	"serenityplace/internal/middleware"
	"serenityplace/internal/models"
	"serenityplace/internal/service"
)

// AuthHandler serves login, registration, profile and user-management
// routes. Role gates are applied by the router, not here; handlers only
// enforce rules that depend on the request body or target record.
type AuthHandler struct {
	users  *service.UserService
	tokens *auth.TokenService
	logger *zap.Logger
}

func NewAuthHandler(users *service.UserService, tokens *auth.TokenService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role"`
}

type profileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type userUpdateRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Role     models.Role `json:"role" validate:"required"`
	Password *string     `json:"password,omitempty"`
}

func (h *AuthHandler) session(w http.ResponseWriter, status int, u *models.User) {
	token, err := h.tokens.Issue(u.ID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, status, map[string]any{"token": token, "user": u})
}

// Login exchanges credentials for a token. Unknown email and wrong
// password both answer 400 so accounts cannot be probed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := decodeJSON(r, &c); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	u, err := h.users.Authenticate(r.Context(), normalizeEmail(c.Email), c.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			respondMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		respondError(w, h.logger, err)
		return
	}
	h.session(w, http.StatusOK, u)
}

// Register creates a user (admin-gated route). Role defaults to staff.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	u, err := h.users.Register(r.Context(), req.Name, normalizeEmail(req.Email), req.Password, req.Role)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.session(w, http.StatusCreated, u)
}

// Me returns the authenticated caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, middleware.UserFromContext(r.Context()))
}

// UpdateProfile lets any authenticated user change their own name and
// email.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	u, err := h.users.UpdateProfile(r.Context(), middleware.UserFromContext(r.Context()), req.Name, normalizeEmail(req.Email))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// ChangePassword verifies the current password before setting the new
// one.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	caller := middleware.UserFromContext(r.Context())
	if err := h.users.ChangePassword(r.Context(), caller, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Password updated successfully")
}

// ListUsers returns all accounts, newest first.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// UpdateUser is the admin edit of any account, optionally resetting the
// password.
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	var req userUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	u, err := h.users.AdminUpdate(r.Context(), id, req.Name, normalizeEmail(req.Email), req.Role, req.Password)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// DeleteUser removes an account. Self-deletion and the bootstrap admin
// are refused by the service.
func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := h.users.Delete(r.Context(), middleware.UserFromContext(r.Context()), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "User deleted successfully")
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
