package models

import (
	"time"
)

// Customer is a loyalty program member. At least one of phone/email must be
// present. Email is stored lower-cased and phone whitespace-trimmed so that
// contact lookups match against a single normalized form.
type Customer struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Phone      *string   `gorm:"uniqueIndex" json:"phone"`
	Email      *string   `gorm:"uniqueIndex" json:"email"`
	Punches    int       `gorm:"not null;default:0" json:"punches"`
	TotalSpent float64   `gorm:"type:decimal(10,2);not null;default:0.0" json:"total_spent"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
