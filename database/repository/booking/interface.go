// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateBooking is returned by Insert when the (treatment, date, patient) key already exists.
	ErrDuplicateBooking = errors.New("booking already exists for treatment, date and patient")
	// ErrNotFound is returned when a booking looked up by id does not exist.
	ErrNotFound = errors.New("booking not found")
)

type BookingRepository interface {
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	// FindByKey returns nil, nil when no booking carries the key.
	FindByKey(ctx context.Context, key models.BookingKey) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository over the "bookings" collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
