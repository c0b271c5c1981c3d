package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetflow-backend/internal/model"
)

type putSubscriptionRequest struct {
	Endpoint           string  `json:"endpoint" binding:"required"`
	P256DH             string  `json:"p256dh" binding:"required"`
	Auth               string  `json:"auth" binding:"required"`
	SubscribedVehicles []int64 `json:"subscribed_vehicles"`
}

// PutSubscription handles the creation or replacement of a push
// subscription and its vehicle mapping.
func (h *Handler) PutSubscription(c *gin.Context) {
	var req putSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	subscription := model.PushSubscription{
		Endpoint: req.Endpoint,
		P256DH:   req.P256DH,
		Auth:     req.Auth,
	}

	err := h.store.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth"}),
		}).Create(&subscription).Error; err != nil {
			return err
		}

		var vehicles []model.Vehicle
		if len(req.SubscribedVehicles) > 0 {
			if err := tx.Find(&vehicles, req.SubscribedVehicles).Error; err != nil {
				return err
			}
		}

		return tx.Model(&subscription).Association("Vehicles").Replace(&vehicles)
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusCreated)
}

type deleteSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// DeleteSubscription handles the deletion of a subscription.
func (h *Handler) DeleteSubscription(c *gin.Context) {
	var req deleteSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.DB().Delete(&model.PushSubscription{Endpoint: req.Endpoint}).Error; err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// rawQueryParam extracts a query value without URL-decoding it; push
// endpoints embed characters that must round-trip verbatim.
func rawQueryParam(rawQuery, key string) (string, bool) {
	for _, kv := range strings.Split(rawQuery, "&") {
		if strings.HasPrefix(kv, key+"=") {
			return kv[len(key)+1:], true
		}
	}
	return "", false
}

// GetSubscription handles the retrieval of a subscription's vehicle list.
func (h *Handler) GetSubscription(c *gin.Context) {
	raw, found := rawQueryParam(c.Request.URL.RawQuery, "endpoint")
	if !found || raw == "" {
		fail(c, http.StatusBadRequest, "endpoint is required")
		return
	}

	var subscription model.PushSubscription
	if err := h.store.DB().Preload("Vehicles").First(&subscription, "endpoint = ?", raw).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			fail(c, http.StatusNotFound, "subscription not found")
		} else {
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	vehicleIDs := make([]int64, len(subscription.Vehicles))
	for i, vehicle := range subscription.Vehicles {
		vehicleIDs[i] = vehicle.ID
	}

	ok(c, http.StatusOK, gin.H{"subscribed_vehicles": vehicleIDs})
}

// GetVAPIDPublicKey returns the VAPID public key to the client.
func (h *Handler) GetVAPIDPublicKey(c *gin.Context) {
	if h.webpush == nil || h.webpush.VAPIDPublicKey == "" {
		fail(c, http.StatusServiceUnavailable, "vapid keys are not configured")
		return
	}
	ok(c, http.StatusOK, gin.H{"public_key": h.webpush.VAPIDPublicKey})
}
