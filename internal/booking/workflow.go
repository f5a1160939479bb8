// Package booking layers the approval state machine over the booking
// collection. Transitions go through dedicated backend sub-paths and are
// guarded locally first: an illegal transition never reaches the network.
package booking

import (
	"context"
	"fmt"

	"github.com/skillshare/skilladmin/internal/collection"
	"github.com/skillshare/skilladmin/internal/logging"
	"github.com/skillshare/skilladmin/internal/models"
	"github.com/skillshare/skilladmin/internal/shared"
)

// Transitioner posts a status transition and returns the updated entity.
type Transitioner interface {
	TransitionBooking(ctx context.Context, id, action string) (models.Booking, error)
}

// Workflow owns the booking collection plus the guarded transition
// operation. Everything else (load, filter, lookup) is the embedded store.
type Workflow struct {
	*collection.Store[models.Booking]

	api    Transitioner
	logger logging.Logger
}

func NewWorkflow(store *collection.Store[models.Booking], api Transitioner, logger logging.Logger) *Workflow {
	return &Workflow{Store: store, api: api, logger: logger}
}

// RequestTransition moves the booking with the given id to target.
// The local guard runs first: the booking must exist and be pending, and
// target must be approved or rejected. Only then is the backend called; the
// entity it returns carries the authoritative status and is what gets
// applied locally. On any failure the collection is unchanged.
func (w *Workflow) RequestTransition(ctx context.Context, id string, target models.Status) (models.Booking, error) {
	var updated models.Booking

	// The guard, the network call, and the apply run under the booking's
	// write lock. A concurrent transition on the same id waits here and
	// then fails the guard against the applied terminal status instead of
	// issuing a second network call.
	err := w.Locked(id, func() error {
		current, ok := w.Get(id)
		if !ok {
			return fmt.Errorf("booking %s: %w", id, shared.ErrNotFound)
		}

		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", shared.ErrIllegalTransition, current.Status, target)
		}

		action, err := actionFor(target)
		if err != nil {
			return err
		}

		confirmed, err := w.api.TransitionBooking(ctx, id, action)
		if err != nil {
			return err
		}

		w.ApplyUpdate(ctx, confirmed)
		w.logger.Info(ctx, "booking transitioned", "id", id, "status", confirmed.Status)
		updated = confirmed
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return updated, nil
}

// actionFor maps a target status to its backend sub-path.
func actionFor(target models.Status) (string, error) {
	switch target {
	case models.StatusApproved:
		return "approve", nil
	case models.StatusRejected:
		return "reject", nil
	default:
		return "", fmt.Errorf("%w: no action for %q", shared.ErrIllegalTransition, target)
	}
}
