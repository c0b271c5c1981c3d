package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// Subscriptions are mapped to the vehicles they want service-due alerts for.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Associations
	Vehicles []*Vehicle `gorm:"many2many:subscription_vehicle_mapping;" json:"-"`
}
