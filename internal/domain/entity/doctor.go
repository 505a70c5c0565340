package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor represents a doctor profile.
// The ID is a caller-supplied string ("doc1" style from the seed file); a
// generated uuid string is assigned when the caller leaves it empty.
type Doctor struct {
	ID            string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Department    string          `gorm:"type:varchar(100);not null" json:"department"`
	Experience    int             `gorm:"not null" json:"experience"`
	SuccessRate   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"success_rate"`
	Qualification string          `gorm:"type:varchar(100)" json:"qualification"`
	Room          string          `gorm:"type:varchar(100)" json:"room"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Timings []DoctorTiming `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"timings"`
}

func (Doctor) TableName() string {
	return "doctors"
}
