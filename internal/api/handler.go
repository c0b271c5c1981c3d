package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"fleetflow-backend/internal/audit"
	"fleetflow-backend/internal/fleet"
	"fleetflow-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	coord     *fleet.Coordinator
	recorder  *audit.Recorder
	webpush   *webpush.Options
	jwtSecret string
	jwtIssuer string
	tokenTTL  int // minutes
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, coord *fleet.Coordinator, recorder *audit.Recorder, webpushOptions *webpush.Options, jwtSecret, jwtIssuer string, tokenTTLMinutes int) *Handler {
	return &Handler{
		store:     s,
		coord:     coord,
		recorder:  recorder,
		webpush:   webpushOptions,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
		tokenTTL:  tokenTTLMinutes,
	}
}
