package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// BookAppointmentRequest identifies patient and doctor by natural key, not by
// identifier: callers know names, the resolver finds the records.
type BookAppointmentRequest struct {
	PatientName string `json:"patient_name" validate:"required,max=255"`
	PatientDOB  string `json:"patient_dob" validate:"required"` // Format: YYYY-MM-DD
	DoctorName  string `json:"doctor_name" validate:"required,max=255"`
	Date        string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time        string `json:"time" validate:"required"` // Format: HH:MM:SS
	Notes       string `json:"notes" validate:"max=1000"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time string `json:"time" validate:"required"` // Format: HH:MM:SS
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
