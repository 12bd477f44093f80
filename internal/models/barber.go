package models

import (
	"strconv"
	"strings"
	"time"
)

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Comma separated weekday numbers (0=Sunday ... 6=Saturday).
	WorkingDays string `gorm:"size:20;default:'1,2,3,4,5,6'" json:"working_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) WorkingDaysSet() map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, part := range strings.Split(b.WorkingDays, ",") {
		part = strings.TrimSpace(part)
		if n, err := strconv.Atoi(part); err == nil && n >= 0 && n <= 6 {
			days[time.Weekday(n)] = true
		}
	}
	return days
}
