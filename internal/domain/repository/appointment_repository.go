package repository

import (
	"context"
	"time"

	"schedula/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindByPatientID returns every appointment for the patient, cancelled
	// included, newest first.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	// FindByDoctorAndDate returns the doctor's non-cancelled appointments on
	// the exact date.
	FindByDoctorAndDate(ctx context.Context, doctorID string, date time.Time) ([]entity.Appointment, error)
	// UpdateSchedule rewrites date and time only, in a single statement.
	UpdateSchedule(ctx context.Context, id uuid.UUID, date time.Time, timeOfDay string) error
	// CancelByID cancels only if not already cancelled. Returns affected
	// rows: 1 = cancelled now, 0 = already cancelled.
	CancelByID(ctx context.Context, id uuid.UUID) (int64, error)
}
