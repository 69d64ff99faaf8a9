package models

import "time"

// Treatment is a read-only catalog entity; nothing in the API writes it.
type Treatment struct {
	ID uint `gorm:"primaryKey" json:"treatmentId"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `json:"price"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
