package user

import (
	"context"
	"fmt"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// GetAllUsers retrieves all accounts for the dashboard.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// IsAdmin consults the role cache first; a missing account is not an admin.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if s.Roles != nil {
		role, found, err := s.Roles.Get(ctx, email)
		if err != nil {
			s.Logger.Warn("Role cache lookup failed", zap.String("email", email), zap.Error(err))
		} else if found {
			return role == models.RoleAdmin, nil
		}
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up role for %s: %w", email, err)
	}

	role := ""
	if user != nil {
		role = user.Role
	}
	if s.Roles != nil {
		if err := s.Roles.Set(ctx, email, role); err != nil {
			s.Logger.Warn("Failed to cache role", zap.String("email", email), zap.Error(err))
		}
	}
	return role == models.RoleAdmin, nil
}

// MakeAdmin grants the admin role to an existing account.
func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) error {
	if err := s.Repo.SetRole(ctx, email, models.RoleAdmin); err != nil {
		return err
	}
	if s.Roles != nil {
		if err := s.Roles.Invalidate(ctx, email); err != nil {
			s.Logger.Warn("Failed to invalidate cached role", zap.String("email", email), zap.Error(err))
		}
	}
	s.Logger.Info("User promoted to admin", zap.String("email", email))
	return nil
}
