package repository

import (
	"context"

	"schedula/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	// FindByName returns the earliest-created doctor with the exact name,
	// or nil when none match.
	FindByName(ctx context.Context, name string) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
