package service

import (
	"context"
	"time"

	"schedula/internal/domain/entity"
	"schedula/internal/domain/repository"
)

// IdentityResolver maps human-supplied natural keys to stored records.
// Appointment booking accepts names rather than identifiers, so every
// appointment operation that starts from names goes through here first.
//
// Both lookups resolve ambiguity the same way: when several records share the
// natural key, the earliest-created one wins. Misses return (nil, nil); the
// caller decides which not-found error applies.
type IdentityResolver interface {
	ResolvePatient(ctx context.Context, name string, dateOfBirth time.Time) (*entity.Patient, error)
	ResolveDoctor(ctx context.Context, name string) (*entity.Doctor, error)
}

type identityResolver struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewIdentityResolver(patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) IdentityResolver {
	return &identityResolver{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (r *identityResolver) ResolvePatient(ctx context.Context, name string, dateOfBirth time.Time) (*entity.Patient, error) {
	return r.patientRepo.FindByNameAndDOB(ctx, name, dateOfBirth)
}

func (r *identityResolver) ResolveDoctor(ctx context.Context, name string) (*entity.Doctor, error) {
	return r.doctorRepo.FindByName(ctx, name)
}
