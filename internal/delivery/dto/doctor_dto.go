package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type DoctorTimingRequest struct {
	Day       string `json:"day" validate:"required,max=16"`
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM:SS
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM:SS
}

type CreateDoctorRequest struct {
	ID            string                `json:"id" validate:"omitempty,max=64"` // generated when empty
	Name          string                `json:"name" validate:"required,max=255"`
	Department    string                `json:"department" validate:"required,max=100"`
	Experience    int                   `json:"experience" validate:"gte=0"`
	SuccessRate   decimal.Decimal       `json:"success_rate"`
	Qualification string                `json:"qualification" validate:"max=100"`
	Room          string                `json:"room" validate:"max=100"`
	Timings       []DoctorTimingRequest `json:"timings" validate:"omitempty,dive"`
}

// Response DTOs

type DoctorTimingResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DoctorResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Department    string                 `json:"department"`
	Experience    int                    `json:"experience"`
	SuccessRate   decimal.Decimal        `json:"success_rate"`
	Qualification string                 `json:"qualification"`
	Room          string                 `json:"room"`
	Timings       []DoctorTimingResponse `json:"timings"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
