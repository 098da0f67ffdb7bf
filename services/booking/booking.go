package booking

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ListServiceNames returns the catalog names.
func (s *DefaultBookingService) ListServiceNames(ctx context.Context) ([]models.ServiceName, error) {
	names, err := s.Services.GetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return names, nil
}

// GetAvailability returns the catalog with each service narrowed to its open slots on date.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, date string) ([]models.Service, error) {
	date = ResolveDate(date, s.DefaultDate)

	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %q: %w", date, err)
	}
	return ComputeAvailability(services, bookings), nil
}

// CreateBooking runs the admission rule and, on acceptance, queues the confirmation email.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, candidate models.Booking) (AdmissionResult, error) {
	result, err := Admit(ctx, candidate, s.Bookings, s.Policy)
	if err != nil {
		return AdmissionResult{}, err
	}
	if !result.Accepted {
		s.logger().Info("booking rejected",
			zap.String("reason", result.Reason),
			zap.String("treatment", candidate.Treatment),
			zap.String("date", candidate.Date),
			zap.String("patient", candidate.Patient))
		return result, nil
	}

	s.logger().Info("booking admitted",
		zap.String("bookingID", result.Stored.ID.Hex()),
		zap.String("treatment", candidate.Treatment),
		zap.String("date", candidate.Date),
		zap.String("slot", candidate.Slot))
	if s.Notifier != nil {
		s.Notifier.AppointmentConfirmed(ctx, *result.Stored)
	}
	return result, nil
}

// GetBooking fetches a booking by its hex id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := parseBookingID(id)
	if err != nil {
		return nil, err
	}
	return s.Bookings.GetByID(ctx, oid)
}

// ListPatientBookings returns every booking made by patient.
func (s *DefaultBookingService) ListPatientBookings(ctx context.Context, patient string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByPatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", patient, err)
	}
	return bookings, nil
}

// RecordPayment marks the booking paid, stores the payment and queues a receipt.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, id string, record models.PaymentRecord) (*models.Booking, error) {
	oid, err := parseBookingID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Bookings.MarkPaid(ctx, oid, record.TransactionID); err != nil {
		return nil, err
	}

	payment := models.Payment{
		ReceiptNo:     uuid.New().String(),
		Appointment:   oid.Hex(),
		TransactionID: record.TransactionID,
		Amount:        record.Amount,
		Currency:      s.Currency,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Payments.Insert(ctx, &payment); err != nil {
		return nil, err
	}

	booking, err := s.Bookings.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	s.logger().Info("payment recorded",
		zap.String("bookingID", oid.Hex()),
		zap.String("transactionID", record.TransactionID),
		zap.String("receiptNo", payment.ReceiptNo))
	if s.Notifier != nil {
		s.Notifier.PaymentReceived(ctx, *booking, payment)
	}
	return booking, nil
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}

func parseBookingID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidBookingID, id)
	}
	return oid, nil
}
