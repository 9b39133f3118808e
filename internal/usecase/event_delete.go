package usecase

import (
	"context"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// DeleteEvent removes an event optimistically. A failed remote delete
// re-inserts the pre-mutation snapshot. An event that never got a
// durable id is removed locally without any remote call.
func (c *Coordinator) DeleteEvent(ctx context.Context, eventID string) error {
	id := c.resolve(eventID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().EventByID(id)
	if !ok {
		return domain.ErrEventNotFound
	}

	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.DeleteEvent(id)
	}, id)

	if domain.IsTemporary(id) {
		// Never reached the backend; the optimistic removal is final.
		return nil
	}

	if err := c.remote.DeleteEvent(ctx, id); err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			return s.AddEvent(prior)
		})
		return c.fail("event.delete", "No se pudo eliminar el evento", err)
	}
	return nil
}
