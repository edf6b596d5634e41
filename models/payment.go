package models

import (
	"time"
)

// Payment records one settlement of all pending orders for a phone.
// Amount is computed server-side at settlement time; rows are immutable
// once written.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `gorm:"type:varchar(20);not null;index" json:"phone"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method    string    `gorm:"type:varchar(20)" json:"method"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
