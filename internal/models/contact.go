package models

import "time"

type ContactMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:80;not null" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
