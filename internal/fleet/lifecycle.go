package fleet

import (
	"context"

	"github.com/looplab/fsm"

	"fleetflow-backend/internal/model"
)

// Trip lifecycle events.
const (
	EventDispatch = "dispatch"
	EventComplete = "complete"
	EventCancel   = "cancel"
)

// tripFSM builds the trip state machine seeded at the given status.
// Completed and Cancelled are terminal: no event leaves them.
func tripFSM(current model.TripStatus) *fsm.FSM {
	return fsm.NewFSM(
		string(current),
		fsm.Events{
			{Name: EventDispatch, Src: []string{string(model.TripDraft)}, Dst: string(model.TripDispatched)},
			{Name: EventComplete, Src: []string{string(model.TripDispatched)}, Dst: string(model.TripCompleted)},
			{Name: EventCancel, Src: []string{string(model.TripDraft), string(model.TripDispatched)}, Dst: string(model.TripCancelled)},
		},
		fsm.Callbacks{},
	)
}

// CanTransition reports whether event is allowed from the given status.
func CanTransition(current model.TripStatus, event string) bool {
	return tripFSM(current).Can(event)
}

// advance applies event to the trip's status in memory. The caller is
// responsible for persisting the trip and its side effects atomically.
func advance(ctx context.Context, t *model.Trip, event string) error {
	m := tripFSM(t.Status)
	if !m.Can(event) {
		return transitionf("cannot %s a trip in status %q", event, t.Status)
	}
	if err := m.Event(ctx, event); err != nil {
		return transitionf("%s from %q: %v", event, t.Status, err)
	}
	t.Status = model.TripStatus(m.Current())
	return nil
}
