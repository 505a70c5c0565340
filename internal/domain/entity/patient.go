package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient.
// Lookups use the (name, date of birth) natural key; there is no database
// uniqueness constraint on the pair, duplicates are filtered at registration.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Contact     string    `gorm:"type:varchar(255);not null" json:"contact"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
