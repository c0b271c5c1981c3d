package model

import "time"

// FuelLog records one refueling event. Append-only.
type FuelLog struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	VehicleID int64     `gorm:"index;not null" json:"vehicle_id"`
	Liters    float64   `gorm:"not null" json:"liters"`
	Cost      float64   `gorm:"not null" json:"cost"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Expense records a non-fuel operational expense. Append-only.
type Expense struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	VehicleID int64     `gorm:"index;not null" json:"vehicle_id"`
	Category  string    `gorm:"size:128;not null" json:"category"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      time.Time `gorm:"not null" json:"date"`
	Notes     string    `gorm:"size:512" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
