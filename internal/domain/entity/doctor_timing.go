package entity

// DoctorTiming is an availability window owned by a single doctor. It has no
// lifecycle of its own: rows are written and removed with their parent.
// Booking does not consult these windows.
type DoctorTiming struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"-"`
	DoctorID  string `gorm:"type:varchar(64);not null;index" json:"-"`
	Day       string `gorm:"type:varchar(16);not null" json:"day"`
	StartTime string `gorm:"type:time;not null" json:"start_time"`
	EndTime   string `gorm:"type:time;not null" json:"end_time"`
}

func (DoctorTiming) TableName() string {
	return "doctor_timings"
}
