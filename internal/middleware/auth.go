package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"serenityplace/internal/auth"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
)

type ctxKey int

const userKey ctxKey = 0

// UserFromContext returns the authenticated user set by a gate, or nil
// on public routes.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

// WithUser returns a context carrying the given user. Exported for
// handler tests.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// Authenticator gates routes by role. Check order is fixed: token
// presence, token validity, user existence, then role sufficiency —
// the first three report 401, only the last reports 403.
type Authenticator struct {
	tokens *auth.TokenService
	users  repository.UserRepository
}

func NewAuthenticator(tokens *auth.TokenService, users repository.UserRepository) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Resolve authenticates the request's Bearer token and loads the user.
// ok is false when the token is missing, invalid, expired, or names no
// existing user.
func (a *Authenticator) Resolve(r *http.Request) (*models.User, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil, false
	}
	userID, err := a.tokens.Verify(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		return nil, false
	}
	u, err := a.users.GetByID(r.Context(), userID)
	if err != nil {
		return nil, false
	}
	return u, true
}

func (a *Authenticator) require(required models.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := a.Resolve(r)
		if !ok {
			deny(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		if !u.Role.Satisfies(required) {
			deny(w, http.StatusForbidden, "Access denied. Insufficient rights.")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// RequireStaff admits staff and admin callers.
func (a *Authenticator) RequireStaff(next http.Handler) http.Handler {
	return a.require(models.RoleStaff, next)
}

// RequireAdmin admits admin callers only.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.require(models.RoleAdmin, next)
}
