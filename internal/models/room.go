package models

import "time"

type Room struct {
	ID uint `gorm:"primaryKey" json:"roomId"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Color string `gorm:"size:10" json:"color,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
