package models

import (
	"time"
)

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Login credentials
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Profile
	Username string `gorm:"size:50" json:"username"`

	// Past orders and the current cart, kept as lists of product ids.
	Purchases []string `gorm:"serializer:json" json:"purchases"`
	Cart      []string `gorm:"serializer:json" json:"cart"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
