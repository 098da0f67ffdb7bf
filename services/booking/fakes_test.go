package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryBookings is an in-memory BookingRepository that enforces the (treatment, date, patient)
// unique key the way the Mongo index does.
type memoryBookings struct {
	mu       sync.Mutex
	bookings []models.Booking

	// staleLookups makes the next n FindByKey calls miss, simulating a check that lost a race.
	staleLookups int
	failWith     error
}

func (m *memoryBookings) GetByDate(_ context.Context, date string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryBookings) GetByPatient(_ context.Context, patient string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryBookings) GetByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id.Hex(), bookingRepo.ErrNotFound)
}

func (m *memoryBookings) FindByKey(_ context.Context, key models.BookingKey) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.staleLookups > 0 {
		m.staleLookups--
		return nil, nil
	}
	for _, b := range m.bookings {
		if b.Key() == key {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryBookings) Insert(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, b := range m.bookings {
		if b.Key() == booking.Key() {
			return fmt.Errorf("error creating booking: %w", bookingRepo.ErrDuplicateBooking)
		}
	}
	booking.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *memoryBookings) MarkPaid(_ context.Context, id primitive.ObjectID, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Paid = true
			m.bookings[i].TransactionID = transactionID
			return nil
		}
	}
	return fmt.Errorf("booking %s: %w", id.Hex(), bookingRepo.ErrNotFound)
}

func (m *memoryBookings) EnsureIndexes(context.Context) error { return nil }

func (m *memoryBookings) count(key models.BookingKey) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.bookings {
		if b.Key() == key {
			n++
		}
	}
	return n
}

type memoryServices struct {
	services []models.Service
	err      error
}

func (m *memoryServices) GetAll(context.Context) ([]models.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.services, nil
}

func (m *memoryServices) GetNames(context.Context) ([]models.ServiceName, error) {
	if m.err != nil {
		return nil, m.err
	}
	names := make([]models.ServiceName, 0, len(m.services))
	for _, s := range m.services {
		names = append(names, models.ServiceName{ID: s.ID, Name: s.Name})
	}
	return names, nil
}

func (m *memoryServices) UpsertByName(context.Context, models.Service) error { return nil }
func (m *memoryServices) EnsureIndexes(context.Context) error             { return nil }

type memoryPayments struct {
	payments []models.Payment
}

func (m *memoryPayments) Insert(_ context.Context, p *models.Payment) error {
	p.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *p)
	return nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	confirmed []models.Booking
	receipts  []models.Payment
}

func (r *recordingNotifier) AppointmentConfirmed(_ context.Context, b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.confirmed = append(r.confirmed, b)
}

func (r *recordingNotifier) PaymentReceived(_ context.Context, _ models.Booking, p models.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipts = append(r.receipts, p)
}

var errStoreDown = errors.New("store unreachable")
