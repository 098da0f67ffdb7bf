package handlers

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBookingService struct {
	names      []models.ServiceName
	available  []models.Service
	lastDate   string
	result     booking.AdmissionResult
	candidates []models.Booking
	bookings   map[string]models.Booking
	err        error
}

func (f *fakeBookingService) ListServiceNames(context.Context) ([]models.ServiceName, error) {
	return f.names, f.err
}

func (f *fakeBookingService) GetAvailability(_ context.Context, date string) ([]models.Service, error) {
	f.lastDate = date
	return f.available, f.err
}

func (f *fakeBookingService) CreateBooking(_ context.Context, candidate models.Booking) (booking.AdmissionResult, error) {
	f.candidates = append(f.candidates, candidate)
	return f.result, f.err
}

func (f *fakeBookingService) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: %q", booking.ErrInvalidBookingID, id)
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
	}
	return &b, nil
}

func (f *fakeBookingService) ListPatientBookings(_ context.Context, patient string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, f.err
}

func (f *fakeBookingService) RecordPayment(ctx context.Context, id string, record models.PaymentRecord) (*models.Booking, error) {
	b, err := f.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Paid = true
	b.TransactionID = record.TransactionID
	f.bookings[id] = *b
	return b, nil
}

type fakePayments struct {
	lastPrice float64
	err       error
}

func (f *fakePayments) CreatePaymentIntent(_ context.Context, price float64) (string, error) {
	f.lastPrice = price
	if f.err != nil {
		return "", f.err
	}
	return "pi_secret", nil
}

type fakeUserService struct {
	users  map[string]models.User
	admins map[string]bool
}

func (f *fakeUserService) UpsertUser(_ context.Context, email string, req models.UserUpsertRequest) (*user.AuthResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, user.ErrInvalidEmail
	}
	u := models.User{Email: email, Name: req.Name}
	f.users[email] = u
	return &user.AuthResponse{Result: &u, AccessToken: "token-" + email}, nil
}

func (f *fakeUserService) GetAllUsers(context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserService) IsAdmin(_ context.Context, email string) (bool, error) {
	return f.admins[email], nil
}

func (f *fakeUserService) MakeAdmin(_ context.Context, email string) error {
	if _, ok := f.users[email]; !ok {
		return userRepo.ErrNotFound
	}
	f.admins[email] = true
	return nil
}

type fakeDoctorService struct {
	doctors []models.Doctor
}

func (f *fakeDoctorService) ListDoctors(context.Context) ([]models.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeDoctorService) AddDoctor(_ context.Context, d models.Doctor) (*models.Doctor, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, doctor.ErrInvalidDoctor
	}
	for _, existing := range f.doctors {
		if existing.Email == d.Email {
			return nil, doctorRepo.ErrDuplicateDoctor
		}
	}
	f.doctors = append(f.doctors, d)
	return &d, nil
}

func (f *fakeDoctorService) RemoveDoctor(_ context.Context, email string) error {
	for i, d := range f.doctors {
		if d.Email == email {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return nil
		}
	}
	return doctorRepo.ErrNotFound
}
