package usecase

import (
	"context"
	"errors"
	"time"

	"schedula/internal/converter"
	"schedula/internal/delivery/dto"
	"schedula/internal/domain/entity"
	"schedula/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPatientExists      = errors.New("patient already registered")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	SearchPatient(ctx context.Context, name, dob string) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

// RegisterPatient creates a patient after checking the (name, dob) natural
// key is not taken. The check is application-level only; there is no unique
// constraint backing it, so two concurrent registrations can still both pass.
func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	existing, err := u.patientRepo.FindByNameAndDOB(ctx, req.Name, dateOfBirth)
	if err != nil {
		u.log.Warnf("Failed to check existing patient: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPatientExists
	}

	patient := &entity.Patient{
		Name:        req.Name,
		DateOfBirth: dateOfBirth,
		Contact:     req.Contact,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%s, name=%s", patient.ID, patient.Name)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) SearchPatient(ctx context.Context, name, dob string) (*dto.PatientResponse, error) {
	dateOfBirth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	patient, err := u.patientRepo.FindByNameAndDOB(ctx, name, dateOfBirth)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}
