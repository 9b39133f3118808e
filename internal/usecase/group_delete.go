package usecase

import (
	"context"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// DeleteTaskGroup removes a group and, by cascade, its tasks. A failed
// remote delete restores the group together with the cascaded tasks.
func (c *Coordinator) DeleteTaskGroup(ctx context.Context, groupID string) error {
	id := c.resolve(groupID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	snap := c.store.Current()
	prior, ok := snap.GroupByID(id)
	if !ok {
		return domain.ErrGroupNotFound
	}
	var owned []domain.Task
	stamped := []string{id}
	for _, t := range snap.Tasks {
		if t.GroupID == id {
			owned = append(owned, t)
			stamped = append(stamped, t.ID)
		}
	}

	// Stamp the cascaded tasks too; a reply to an in-flight task
	// mutation must read as stale rather than re-add an orphan.
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.DeleteTaskGroup(id)
	}, stamped...)

	if domain.IsTemporary(id) {
		return nil
	}

	if err := c.remote.DeleteTaskGroup(ctx, id); err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			s = s.AddTaskGroup(prior)
			for _, t := range owned {
				s = s.UpsertTask(t)
			}
			return s
		}, stamped[1:]...)
		return c.fail("group.delete", "No se pudo eliminar el grupo", err)
	}
	return nil
}
