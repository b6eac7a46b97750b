package models

import (
	"time"
)

// Transaction is one append-only ledger entry: an earn event (positive
// PunchesAdded, spend amount) or a redemption (negative PunchesAdded, amount
// always zero). Entries are never updated or deleted.
type Transaction struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID      string    `gorm:"type:uuid;index;not null" json:"customer_id"`
	CustomerName    string    `gorm:"not null" json:"customer_name"`
	Amount          float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PunchesAdded    int       `gorm:"not null" json:"punches_added"`
	RewardRedeemed  *string   `json:"reward_redeemed,omitempty"`
	DiscountPercent *int      `json:"discount_percent,omitempty"`
	CreatedAt       time.Time `gorm:"index;not null" json:"created_at"`
}
