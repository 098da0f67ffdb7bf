package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// Rejection reasons reported in AdmissionResult.Reason.
const (
	ReasonDuplicate = "duplicate"
	ReasonSlotTaken = "slot_taken"
)

// BookingStore is the slice of booking storage the admission rule needs.
type BookingStore interface {
	FindByKey(ctx context.Context, key models.BookingKey) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// AdmissionResult is the outcome of a booking request. A rejection is not an error.
type AdmissionResult struct {
	Accepted bool            `json:"success"`
	Reason   string          `json:"reason,omitempty"`
	Existing *models.Booking `json:"existing,omitempty"`
	Stored   *models.Booking `json:"stored,omitempty"`
}

// AdmissionPolicy tunes the admission rule.
type AdmissionPolicy struct {
	// StrictSlots also rejects a candidate whose slot is already booked by another patient
	// for the same treatment and date.
	StrictSlots bool
}

// Admit stores candidate unless a booking with the same (treatment, date, patient) exists.
// Store failures are returned as errors and never reported as a rejection.
func Admit(ctx context.Context, candidate models.Booking, store BookingStore, policy AdmissionPolicy) (AdmissionResult, error) {
	key := candidate.Key()

	existing, err := store.FindByKey(ctx, key)
	if err != nil {
		return AdmissionResult{}, fmt.Errorf("admission lookup failed: %w", err)
	}
	if existing != nil {
		return AdmissionResult{Accepted: false, Reason: ReasonDuplicate, Existing: existing}, nil
	}

	if policy.StrictSlots {
		holder, err := slotHolder(ctx, store, candidate)
		if err != nil {
			return AdmissionResult{}, err
		}
		if holder != nil {
			return AdmissionResult{Accepted: false, Reason: ReasonSlotTaken, Existing: holder}, nil
		}
	}

	stored := candidate
	stored.Paid = false
	stored.TransactionID = ""
	if err := store.Insert(ctx, &stored); err != nil {
		if !errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return AdmissionResult{}, fmt.Errorf("admission insert failed: %w", err)
		}
		// A concurrent request won the unique index; report its booking as the duplicate.
		winner, lookupErr := store.FindByKey(ctx, key)
		if lookupErr != nil {
			return AdmissionResult{}, fmt.Errorf("admission lookup after conflict failed: %w", lookupErr)
		}
		if winner == nil {
			return AdmissionResult{}, fmt.Errorf("%w: conflicting booking for %s/%s/%s is gone", ErrAdmissionConflict, key.Treatment, key.Date, key.Patient)
		}
		return AdmissionResult{Accepted: false, Reason: ReasonDuplicate, Existing: winner}, nil
	}
	return AdmissionResult{Accepted: true, Stored: &stored}, nil
}

// slotHolder returns the booking that already occupies the candidate's slot, if any.
func slotHolder(ctx context.Context, store BookingStore, candidate models.Booking) (*models.Booking, error) {
	sameDay, err := store.GetByDate(ctx, candidate.Date)
	if err != nil {
		return nil, fmt.Errorf("admission slot check failed: %w", err)
	}
	for i := range sameDay {
		b := sameDay[i]
		if b.Treatment == candidate.Treatment && b.Slot == candidate.Slot && b.Patient != candidate.Patient {
			return &b, nil
		}
	}
	return nil, nil
}
