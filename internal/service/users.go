// Package service contains the application services applying role and
// ownership policy on top of the repositories.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"serenityplace/internal/auth"
	"serenityplace/internal/errs"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
)

const minPasswordLength = 6

// UserService manages accounts. The bootstrap admin, identified by its
// well-known email, can never be deleted.
type UserService struct {
	users          repository.UserRepository
	protectedEmail string
	logger         *zap.Logger
}

func NewUserService(users repository.UserRepository, protectedEmail string, logger *zap.Logger) *UserService {
	return &UserService{users: users, protectedEmail: protectedEmail, logger: logger}
}

// Register creates a user with a hashed password. Role defaults to
// staff when empty. The route is admin-gated; this method does not
// re-check the caller.
func (s *UserService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	if role == "" {
		role = models.RoleStaff
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", errs.ErrValidation, role)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, minPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies credentials and returns the user. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !auth.VerifyPassword(u.PasswordHash, password) {
		return nil, errs.ErrUnauthorized
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile lets a user change their own name and email.
func (s *UserService) UpdateProfile(ctx context.Context, caller *models.User, name, email string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.Email = email
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangePassword verifies the current password before re-hashing.
func (s *UserService) ChangePassword(ctx context.Context, caller *models.User, current, next string) error {
	u, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(u.PasswordHash, current) {
		return fmt.Errorf("%w: current password is incorrect", errs.ErrValidation)
	}
	if len(next) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, minPasswordLength)
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.users.Update(ctx, u)
}

// AdminUpdate modifies any user's name, email, role and optionally
// password. Admin-gated at the route.
func (s *UserService) AdminUpdate(ctx context.Context, id int64, name, email string, role models.Role, password *string) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", errs.ErrValidation, role)
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.Role = role
	if password != nil {
		if len(*password) < minPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, minPasswordLength)
		}
		hash, err := auth.HashPassword(*password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes a user. Self-deletion and deleting the bootstrap admin
// are forbidden.
func (s *UserService) Delete(ctx context.Context, caller *models.User, id int64) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.ID == caller.ID {
		return fmt.Errorf("%w: cannot delete your own account", errs.ErrForbidden)
	}
	if u.Email == s.protectedEmail {
		return fmt.Errorf("%w: cannot delete the bootstrap admin", errs.ErrForbidden)
	}
	return s.users.Delete(ctx, id)
}

// EnsureFirstAdmin creates the bootstrap admin if no account with the
// well-known email exists yet. Called once on startup.
func (s *UserService) EnsureFirstAdmin(ctx context.Context, email, password, name string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u := &models.User{Name: name, Email: email, PasswordHash: hash, Role: models.RoleAdmin}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}
	s.logger.Info("bootstrap admin created", zap.String("email", email))
	return nil
}
