package usecase

import (
	"context"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// MoveEventInput is the new position reported by a grid drag or resize.
type MoveEventInput struct {
	ID        string
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	AllDay    bool
}

// MoveEvent applies a drag/resize as an optimistic update of the date
// and time fields, leaving every other field untouched.
func (c *Coordinator) MoveEvent(ctx context.Context, in MoveEventInput) (domain.Event, error) {
	id := c.resolve(in.ID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().EventByID(id)
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}

	updated := prior
	updated.StartDate = in.StartDate
	updated.EndDate = in.EndDate
	updated.AllDay = in.AllDay
	if in.AllDay {
		updated.StartTime, updated.EndTime = "", ""
	} else {
		updated.StartTime = in.StartTime
		updated.EndTime = in.EndTime
	}
	return c.pushEventUpdate(ctx, prior, updated)
}
