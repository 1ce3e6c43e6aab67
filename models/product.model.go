package models

import (
	"time"
)

// Product statuses. A listing starts out available and moves to sold or
// reserved as the seller updates it.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusReserved  = "reserved"
)

// Defaults applied when the seller leaves a field blank.
const (
	DefaultCategory  = "Other"
	DefaultCondition = "Good"
)

type Product struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string  `gorm:"index;size:36" json:"ownerId"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:50;index" json:"category"` // electronics, furniture, etc.
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image,omitempty"`
	Condition   string  `gorm:"size:20" json:"condition"`                  // New, Good, Fair
	Status      string  `gorm:"default:'available';size:20" json:"status"` // available, sold, reserved

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is one of the recognised listing statuses.
func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusSold || s == StatusReserved
}
