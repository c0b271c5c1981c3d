package model

import "time"

// Audit event names and outcomes.
const (
	AuditEventLogin        = "Login"
	AuditEventRegistration = "Registration"

	AuditSuccess = "Success"
	AuditFailure = "Failure"
)

// AuditLog is an append-only record of an authentication event.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id,omitempty"`
	Event     string    `gorm:"size:64;not null" json:"event"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}
