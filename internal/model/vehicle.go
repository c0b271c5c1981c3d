package model

import "time"

// VehicleStatus is the lifecycle state of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "Available"
	VehicleOnTrip    VehicleStatus = "On Trip"
	VehicleInShop    VehicleStatus = "In Shop"
	VehicleRetired   VehicleStatus = "Retired"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID                  int64         `gorm:"primaryKey" json:"id"`
	Name                string        `gorm:"size:128;not null" json:"name"`
	LicensePlate        string        `gorm:"uniqueIndex;size:32;not null" json:"license_plate"`
	MaxCapacity         float64       `gorm:"not null" json:"max_capacity"`
	Odometer            float64       `gorm:"not null" json:"odometer"`
	Status              VehicleStatus `gorm:"size:20;not null;default:Available" json:"status"`
	AcquisitionCost     *float64      `json:"acquisition_cost,omitempty"`
	NextServiceOdometer *float64      `json:"next_service_odometer,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
