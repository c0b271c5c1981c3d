package model

import "time"

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	TripDraft      TripStatus = "Draft"
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s TripStatus) Terminal() bool {
	return s == TripCompleted || s == TripCancelled
}

// Trip represents one cargo movement by a vehicle/driver pair.
// Trips are mutated only through the fleet coordinator's lifecycle
// operations, never directly.
type Trip struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	VehicleID     int64      `gorm:"index;not null" json:"vehicle_id"`
	DriverID      int64      `gorm:"index;not null" json:"driver_id"`
	CargoWeight   float64    `gorm:"not null" json:"cargo_weight"`
	Status        TripStatus `gorm:"size:20;not null;default:Draft" json:"status"`
	StartOdometer float64    `gorm:"not null" json:"start_odometer"`
	EndOdometer   *float64   `json:"end_odometer,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
