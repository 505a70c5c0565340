package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	DOB     string `json:"dob" validate:"required"` // Format: YYYY-MM-DD
	Contact string `json:"contact" validate:"required,max=255"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
