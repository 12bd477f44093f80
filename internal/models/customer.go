package models

import "time"

// Customer identity is the (email, phone) pair; the same person booking
// with a different phone number is a different customer record.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:80;not null" json:"name"`
	Email string `gorm:"size:100;not null;uniqueIndex:idx_customers_email_phone" json:"email"`
	Phone string `gorm:"size:30;not null;uniqueIndex:idx_customers_email_phone" json:"phone"`

	// Opt-out token for reminder/review emails.
	UnsubscribeToken string `gorm:"size:36;uniqueIndex" json:"-"`
	Unsubscribed     bool   `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
