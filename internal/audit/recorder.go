package audit

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"fleetflow-backend/internal/model"
)

// Recorder appends authentication events to the audit log. Failures to
// write an audit record never fail the operation being audited.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder creates a Recorder over the given database handle.
func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Record appends one audit entry. userID may be nil when the actor is
// unknown (for example a failed login against an unregistered email).
func (r *Recorder) Record(ctx context.Context, event, status string, userID *int64, ip, userAgent string) {
	entry := model.AuditLog{
		UserID:    userID,
		Event:     event,
		Status:    status,
		IPAddress: ip,
		UserAgent: userAgent,
		Timestamp: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("failed to save audit log (%s/%s): %v", event, status, err)
	}
}
