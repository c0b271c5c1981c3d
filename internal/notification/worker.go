package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"fleetflow-backend/internal/model"
)

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real Sender implementation using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers sending service-due alerts for
// vehicles whose odometer has crossed the next-service threshold.
type WorkerPool struct {
	size    int
	jobs    chan int64
	db      *gorm.DB
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan int64, size),
		db:      db,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// SetSender replaces the push sender. Used by tests.
func (wp *WorkerPool) SetSender(s Sender) {
	wp.sender = s
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan int64 {
	return wp.jobs
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("alert worker %d started", id)
	for {
		select {
		case vehicleID := <-wp.jobs:
			log.Printf("alert worker %d processing vehicle %d", id, vehicleID)
			wp.sendAlertsForVehicle(ctx, vehicleID)
		case <-ctx.Done():
			log.Printf("alert worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a service-due alert for the given vehicle.
func (wp *WorkerPool) Dispatch(vehicleID int64) {
	wp.jobs <- vehicleID
}

// sendAlertsForVehicle fetches the subscriptions mapped to a vehicle and
// sends the service-due notification to each.
func (wp *WorkerPool) sendAlertsForVehicle(ctx context.Context, vehicleID int64) {
	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Joins("JOIN subscription_vehicle_mapping svm ON svm.push_subscription_endpoint = push_subscriptions.endpoint").
		Where("svm.vehicle_id = ?", vehicleID).
		Find(&subscriptions).Error
	if err != nil {
		log.Printf("error fetching subscriptions for vehicle %d: %v", vehicleID, err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	var vehicle model.Vehicle
	label := fmt.Sprintf("%d", vehicleID)
	if err := wp.db.WithContext(ctx).
		Select("name", "odometer").
		First(&vehicle, vehicleID).Error; err != nil {
		log.Printf("error fetching vehicle %d: %v", vehicleID, err)
	} else if vehicle.Name != "" {
		label = vehicle.Name
	}

	log.Printf("sending %d service-due alerts for vehicle %d", len(subscriptions), vehicleID)

	message := fmt.Sprintf("Vehicle %s is due for service (odometer %.0f).", label, vehicle.Odometer)
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Expired subscriptions are pruned on 410.
	if resp.StatusCode == http.StatusGone {
		log.Printf("subscription %s is expired, deleting", sub.Endpoint)
		if err := wp.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
