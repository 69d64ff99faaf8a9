package models

import "time"

// Contact and insurance data live in first-class columns. Earlier versions
// of this service serialized them as a JSON blob into a free-text column;
// rows migrated from that layout are re-split on first comprehensive update.
type Patient struct {
	ID uint `gorm:"primaryKey" json:"patientId"`

	FirstName string     `gorm:"size:100;not null" json:"firstName"`
	LastName  string     `gorm:"size:100;not null" json:"lastName"`
	BirthDate *time.Time `json:"birthDate,omitempty"`

	Phone string `gorm:"size:20" json:"phone,omitempty"`
	Email string `gorm:"size:100" json:"email,omitempty"`

	InsuranceProvider     string `gorm:"size:100" json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber string `gorm:"size:50" json:"insurancePolicyNumber,omitempty"`

	Notes string `gorm:"size:255" json:"notes,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
