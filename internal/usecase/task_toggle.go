package usecase

import (
	"context"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// ToggleTask flips a task's done flag. It is the checkbox path: same
// snapshot/apply/confirm/rollback protocol as any update, but the wire
// patch carries only the status field.
func (c *Coordinator) ToggleTask(ctx context.Context, taskID string) (domain.Task, error) {
	id := c.resolve(taskID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().TaskByID(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	updated := prior
	updated.Done = !prior.Done
	return c.pushTaskUpdate(ctx, prior, updated)
}
