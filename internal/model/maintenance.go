package model

import "time"

// ServiceTypeReturnToService marks the follow-up log entry that closes a
// shop visit. A vehicle is In Shop while its most recent maintenance log
// is any other service type.
const ServiceTypeReturnToService = "Returned to Service"

// MaintenanceLog records one service event for a vehicle.
type MaintenanceLog struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	VehicleID   int64     `gorm:"index;not null" json:"vehicle_id"`
	ServiceType string    `gorm:"size:128;not null" json:"service_type"`
	Cost        float64   `gorm:"not null" json:"cost"`
	Date        time.Time `gorm:"not null" json:"date"`
	Notes       string    `gorm:"size:512" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
