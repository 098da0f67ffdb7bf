package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
	"doctorsportal/services/notification"

	"go.uber.org/zap"
)

// BookingService exposes the catalog, availability and booking operations to the handlers.
type BookingService interface {
	ListServiceNames(ctx context.Context) ([]models.ServiceName, error)
	GetAvailability(ctx context.Context, date string) ([]models.Service, error)
	CreateBooking(ctx context.Context, candidate models.Booking) (AdmissionResult, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListPatientBookings(ctx context.Context, patient string) ([]models.Booking, error)
	RecordPayment(ctx context.Context, id string, record models.PaymentRecord) (*models.Booking, error)
}

// DefaultBookingService implements BookingService on top of the repositories.
type DefaultBookingService struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Notifier notification.Notifier
	Policy   AdmissionPolicy
	Logger   *zap.Logger

	// DefaultDate is used when an availability request carries no date.
	DefaultDate string
	Currency    string
}
