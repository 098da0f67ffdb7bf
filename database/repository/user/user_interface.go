// File: database/repository/user/user_interface.go
package userRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when an update targets an email with no account.
var ErrNotFound = errors.New("user not found")

type UserRepository interface {
	// GetByEmail returns nil, nil when no account exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Upsert(ctx context.Context, email string, req models.UserUpsertRequest) (*models.User, error)
	SetRole(ctx context.Context, email, role string) error
	EnsureIndexes(ctx context.Context) error
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a UserRepository over the "user" collection.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &MongoUserRepo{coll: db.Collection("user")}
}
