package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// SaveTaskInput carries the editor's desired final state for a task.
// An empty ID means create.
type SaveTaskInput struct {
	Task domain.Task
}

// SaveTask creates or updates a task optimistically. A change of group
// is routed through the compensated reassignment flow.
func (c *Coordinator) SaveTask(ctx context.Context, in SaveTaskInput) (domain.Task, error) {
	t := in.Task
	if strings.TrimSpace(t.Title) == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	if t.GroupID == "" {
		return domain.Task{}, domain.ErrNoGroup
	}

	if t.ID == "" {
		t.ID = domain.NewTemporaryID()
		release := c.guard.acquire(t.ID)
		defer release()
		return c.pushTaskCreate(ctx, t)
	}

	id := c.resolve(t.ID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().TaskByID(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	t.ID = id
	if t.GroupID != prior.GroupID && !domain.IsTemporary(id) {
		return c.pushTaskReassign(ctx, prior, t)
	}
	return c.pushTaskUpdate(ctx, prior, t)
}

// pushTaskCreate runs the optimistic create protocol. The guard for
// t.ID must be held; t.ID is a temporary id.
func (c *Coordinator) pushTaskCreate(ctx context.Context, t domain.Task) (domain.Task, error) {
	tempID := t.ID
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddTask(t)
	}, tempID)

	server, err := c.remote.CreateTaskInGroup(ctx, c.userID, t.GroupID, t)
	if err != nil {
		c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
			return s.DeleteTask(tempID)
		})
		return domain.Task{}, c.fail("task.create", "No se pudo guardar la tarea", err)
	}

	applied := c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
		return s.DeleteTask(tempID).UpsertTask(server)
	}, server.ID)
	if !applied {
		log.Warn().Str("id", tempID).Msg("discarded stale create response")
		return server, nil
	}
	c.recordAlias(tempID, server.ID)
	log.Debug().Str("temp", tempID).Str("id", server.ID).Msg("task created")
	return server, nil
}

// pushTaskUpdate runs the optimistic update protocol for the desired
// state t (same group as prior). The guard must be held. A task still
// carrying a temporary id is created instead.
func (c *Coordinator) pushTaskUpdate(ctx context.Context, prior, t domain.Task) (domain.Task, error) {
	id := t.ID
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.UpdateTask(t)
	}, id)

	var server domain.Task
	var err error
	if domain.IsTemporary(id) {
		server, err = c.remote.CreateTaskInGroup(ctx, c.userID, t.GroupID, t)
	} else {
		server, err = c.remote.UpdateUserTask(ctx, c.userID, id, taskPatch(prior, t))
	}
	if err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			return s.UpdateTask(prior)
		})
		return domain.Task{}, c.fail("task.update", "No se pudo actualizar la tarea", err)
	}

	applied := c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
		if server.ID != id {
			s = s.DeleteTask(id)
		}
		return s.UpsertTask(server)
	}, server.ID)
	if !applied {
		log.Warn().Str("id", id).Msg("discarded stale update response")
		return server, nil
	}
	if server.ID != id {
		c.recordAlias(id, server.ID)
	}
	return server, nil
}

// taskPatch builds the minimal wire patch from prior to updated.
func taskPatch(prior, updated domain.Task) domain.TaskPatch {
	var p domain.TaskPatch
	if updated.Title != prior.Title {
		p.Title = &updated.Title
	}
	if updated.Done != prior.Done {
		p.Done = &updated.Done
	}
	if updated.StartDate != prior.StartDate || updated.StartTime != prior.StartTime {
		d := domain.CombineStamp(updated.StartDate, updated.StartTime)
		p.Date = &d
	}
	if updated.GroupID != prior.GroupID {
		p.GroupID = &updated.GroupID
	}
	return p
}
