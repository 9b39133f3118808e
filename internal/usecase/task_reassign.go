package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// ReassignTask moves a task to another group. Group membership is part
// of the task's creation context on the backend, so a direct update may
// be rejected; in that case the move degrades to create-in-new-group
// followed by delete-from-old-group, with a compensating delete of the
// fresh copy if the second step fails. Whatever happens, the store ends
// up with exactly one entry per logical task.
func (c *Coordinator) ReassignTask(ctx context.Context, taskID, newGroupID string) (domain.Task, error) {
	if newGroupID == "" {
		return domain.Task{}, domain.ErrNoGroup
	}

	id := c.resolve(taskID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().TaskByID(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	updated := prior
	updated.GroupID = newGroupID
	if domain.IsTemporary(id) {
		// Not on the backend yet; a plain create in the new group covers it.
		return c.pushTaskUpdate(ctx, prior, updated)
	}
	return c.pushTaskReassign(ctx, prior, updated)
}

// pushTaskReassign runs the reassignment protocol for the desired state
// t (different group than prior, durable id). The guard must be held.
func (c *Coordinator) pushTaskReassign(ctx context.Context, prior, t domain.Task) (domain.Task, error) {
	id := t.ID
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.UpdateTask(t)
	}, id)

	rollback := func() {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			return s.UpdateTask(prior)
		})
	}

	// First choice: the backend accepts task_group_id as a plain patch.
	server, err := c.remote.UpdateUserTask(ctx, c.userID, id, taskPatch(prior, t))
	if err == nil {
		c.reconcileTask(id, rev, server)
		return server, nil
	}
	re := domain.AsRemoteError(err)
	if re == nil || !re.ShapeRejection() {
		rollback()
		return domain.Task{}, c.fail("task.reassign", "No se pudo mover la tarea", err)
	}
	log.Debug().Str("id", id).Int("status", re.Status).
		Msg("direct group update rejected, falling back to create+delete")

	// Fallback: create the task in the new group, then delete the old one.
	created, err := c.remote.CreateTaskInGroup(ctx, c.userID, t.GroupID, t)
	if err != nil {
		rollback()
		return domain.Task{}, c.fail("task.reassign", "No se pudo mover la tarea", err)
	}

	if err := c.remote.DeleteUserTask(ctx, c.userID, id); err != nil {
		// Two live copies exist remotely; delete the fresh one so the
		// original stays the single source of truth.
		if compErr := c.remote.DeleteUserTask(ctx, c.userID, created.ID); compErr != nil {
			log.Error().Err(compErr).Str("id", id).Str("duplicate", created.ID).
				Msg("compensation failed: duplicate task left on the server")
			c.notify.Error("Conflicto al mover la tarea: puede haber quedado duplicada en el servidor")
			// Keep the moved copy locally; the duplicate resolves on the
			// next hydration.
			c.promoteTask(id, rev, created)
			return created, domain.ErrRemoteDuplicate
		}
		rollback()
		return domain.Task{}, c.fail("task.reassign", "No se pudo mover la tarea", err)
	}

	c.promoteTask(id, rev, created)
	return created, nil
}

// reconcileTask replaces the optimistic value with the server echo.
func (c *Coordinator) reconcileTask(id string, rev uint64, server domain.Task) {
	applied := c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
		if server.ID != id {
			s = s.DeleteTask(id)
		}
		return s.UpsertTask(server)
	}, server.ID)
	if !applied {
		log.Warn().Str("id", id).Msg("discarded stale reassign response")
		return
	}
	if server.ID != id {
		c.recordAlias(id, server.ID)
	}
}

// promoteTask swaps the entry under id for the server-created task.
func (c *Coordinator) promoteTask(id string, rev uint64, created domain.Task) {
	applied := c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
		return s.DeleteTask(id).UpsertTask(created)
	}, created.ID)
	if !applied {
		log.Warn().Str("id", id).Msg("discarded stale reassign response")
		return
	}
	c.recordAlias(id, created.ID)
}
