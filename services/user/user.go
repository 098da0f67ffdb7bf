package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// ErrInvalidEmail is returned when an account email is blank.
var ErrInvalidEmail = errors.New("email is required")

// UpsertUser stores the profile for email and returns it with a fresh access token.
func (s *DefaultUserService) UpsertUser(ctx context.Context, email string, req models.UserUpsertRequest) (*AuthResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrInvalidEmail
	}

	user, err := s.Repo.Upsert(ctx, email, req)
	if err != nil {
		s.Logger.Error("Failed to upsert user", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.Logger.Debug("User upserted", zap.String("email", email))
	return &AuthResponse{Result: user, AccessToken: token}, nil
}
