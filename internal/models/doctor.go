package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"doctorId"`

	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Specialty string `gorm:"size:100" json:"specialty,omitempty"`

	// Legacy practice-management credentials. Only the bootstrap default
	// doctor ever writes these; the API never reads them back.
	Username string `gorm:"size:50" json:"-"`
	Password string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
