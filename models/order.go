package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order is one checkout action for a reservation's phone. Items is an
// opaque JSON document; the line-item structure is owned by the client
// and never normalized into rows. Total is trusted as given.
type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Phone     string         `gorm:"type:varchar(20);not null;index" json:"phone"`
	Items     datatypes.JSON `json:"items"`
	Total     float64        `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Status    string         `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}
