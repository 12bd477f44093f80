package models

import "time"

// TimeOff blocks a barber for an inclusive range of calendar days.
// Ranges for the same barber must never overlap; editing is delete
// and recreate, there is no partial update flow.
type TimeOff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	Reason    string `gorm:"size:120" json:"reason"`
	CreatedBy string `gorm:"size:100" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
}

// Covers reports whether target falls inside the inclusive range.
// All three values are compared at date precision.
func (t *TimeOff) Covers(target time.Time) bool {
	d := dateOnly(target)
	return !d.Before(dateOnly(t.StartDate)) && !d.After(dateOnly(t.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
