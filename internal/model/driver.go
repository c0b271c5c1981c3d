package model

import "time"

// DriverStatus is the duty state of a driver.
type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverSuspended DriverStatus = "Suspended"
)

// Driver represents a driver employed by the fleet.
type Driver struct {
	ID                 int64        `gorm:"primaryKey" json:"id"`
	Name               string       `gorm:"size:128;not null" json:"name"`
	LicenseExpiry      time.Time    `gorm:"not null" json:"license_expiry"`
	SafetyScore        float64      `gorm:"not null;default:100" json:"safety_score"`
	TripCompletionRate float64      `gorm:"not null;default:100" json:"trip_completion_rate"`
	Status             DriverStatus `gorm:"size:20;not null;default:Off Duty" json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
