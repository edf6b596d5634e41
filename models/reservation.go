package models

import (
	"time"
)

// Reservation is the customer identity record. The phone number is the
// identity key: at most one reservation ever exists per phone.
type Reservation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"type:varchar(100);not null" json:"name"`
	People          int        `gorm:"not null;default:1" json:"people"`
	Phone           string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Present         string     `gorm:"type:varchar(10);not null;default:'no'" json:"present"`
	ReservationDate *time.Time `json:"reservation_date,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`

	// Declared from this side so the foreign keys land on orders and
	// payments, referencing reservations(phone).
	Orders   []Order   `gorm:"foreignKey:Phone;references:Phone" json:"-"`
	Payments []Payment `gorm:"foreignKey:Phone;references:Phone" json:"-"`
}
