package models

import "time"

// Haircut is one completed service event. Date is kept as an ISO
// YYYY-MM-DD string so grouping and equality match what clients send.
type Haircut struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string  `gorm:"size:100;not null" json:"clientName"`
	ServiceName string  `gorm:"size:100;not null" json:"serviceName"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	Date  string  `gorm:"size:10;not null;index" json:"date"`
	Time  string  `gorm:"size:20" json:"time,omitempty"`
	Count int     `gorm:"default:0" json:"count"`
	Tip   float64 `gorm:"type:decimal(10,2);default:0" json:"tip"`

	CreatedAt time.Time `json:"created_at"`
}
