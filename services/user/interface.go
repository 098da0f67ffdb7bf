package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// AuthResponse is returned by PUT /user/:email.
type AuthResponse struct {
	Result      *models.User `json:"result"`
	AccessToken string       `json:"accessToken"`
}

type UserService interface {
	// UpsertUser creates or updates the account for email and issues an access token.
	UpsertUser(ctx context.Context, email string, req models.UserUpsertRequest) (*AuthResponse, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// IsAdmin reports whether email belongs to an admin account.
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, email string) error
}

// TokenIssuer signs access tokens for an account email.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// RoleCache caches account roles; a nil cache disables caching.
type RoleCache interface {
	Get(ctx context.Context, email string) (role string, found bool, err error)
	Set(ctx context.Context, email, role string) error
	Invalidate(ctx context.Context, email string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenIssuer
	Roles  RoleCache
	Logger *zap.Logger
}

func NewDefaultUserService(repo userRepo.UserRepository, tokens TokenIssuer, roles RoleCache, logger *zap.Logger) *DefaultUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{Repo: repo, Tokens: tokens, Roles: roles, Logger: logger}
}
