package usecase

import (
	"context"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// DeleteTask removes a task optimistically, re-inserting the
// pre-mutation snapshot if the remote delete fails.
func (c *Coordinator) DeleteTask(ctx context.Context, taskID string) error {
	id := c.resolve(taskID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().TaskByID(id)
	if !ok {
		return domain.ErrTaskNotFound
	}

	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.DeleteTask(id)
	}, id)

	if domain.IsTemporary(id) {
		return nil
	}

	if err := c.remote.DeleteUserTask(ctx, c.userID, id); err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			return s.AddTask(prior)
		})
		return c.fail("task.delete", "No se pudo eliminar la tarea", err)
	}
	return nil
}
