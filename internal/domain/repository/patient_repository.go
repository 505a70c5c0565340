package repository

import (
	"context"
	"time"

	"schedula/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	// FindByNameAndDOB returns the earliest-created patient matching the
	// natural key, or nil when none match.
	FindByNameAndDOB(ctx context.Context, name string, dob time.Time) (*entity.Patient, error)
}
