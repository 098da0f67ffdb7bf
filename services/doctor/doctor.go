package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// ErrInvalidDoctor is returned when a doctor lacks a name or email.
var ErrInvalidDoctor = errors.New("doctor name and email are required")

type DoctorService interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, doctor models.Doctor) (*models.Doctor, error)
	RemoveDoctor(ctx context.Context, email string) error
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

func NewDefaultDoctorService(repo doctorRepo.DoctorRepository, logger *zap.Logger) *DefaultDoctorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDoctorService{Repo: repo, Logger: logger}
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}

// AddDoctor stores the doctor; duplicate emails surface doctorRepo.ErrDuplicateDoctor.
// Emails are matched exactly, as stored.
func (s *DefaultDoctorService) AddDoctor(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	doctor.Name = strings.TrimSpace(doctor.Name)
	if doctor.Name == "" || strings.TrimSpace(doctor.Email) == "" {
		return nil, ErrInvalidDoctor
	}
	if err := s.Repo.Insert(ctx, &doctor); err != nil {
		return nil, err
	}
	s.Logger.Info("Doctor added", zap.String("email", doctor.Email), zap.String("specialty", doctor.Specialty))
	return &doctor, nil
}

func (s *DefaultDoctorService) RemoveDoctor(ctx context.Context, email string) error {
	if err := s.Repo.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	s.Logger.Info("Doctor removed", zap.String("email", email))
	return nil
}
