package models

import "time"

type ServicePrice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceName string `gorm:"size:100;uniqueIndex;not null" json:"service_name"`
	BasePrice   int    `gorm:"not null" json:"base_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
