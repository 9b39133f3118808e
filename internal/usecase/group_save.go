package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// SaveTaskGroup creates or updates a task group optimistically. An
// empty id means create.
func (c *Coordinator) SaveTaskGroup(ctx context.Context, g domain.TaskGroup) (domain.TaskGroup, error) {
	if strings.TrimSpace(g.Title) == "" {
		return domain.TaskGroup{}, domain.ErrEmptyTitle
	}

	if g.ID == "" {
		g.ID = domain.NewTemporaryID()
		release := c.guard.acquire(g.ID)
		defer release()
		return c.pushGroupCreate(ctx, g)
	}

	id := c.resolve(g.ID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().GroupByID(id)
	if !ok {
		return domain.TaskGroup{}, domain.ErrGroupNotFound
	}
	g.ID = id

	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.UpdateTaskGroup(g)
	}, id)

	var server domain.TaskGroup
	var err error
	if domain.IsTemporary(id) {
		server, err = c.remote.CreateTaskGroup(ctx, g)
	} else {
		server, err = c.remote.UpdateTaskGroup(ctx, g)
	}
	if err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			return s.UpdateTaskGroup(prior)
		})
		return domain.TaskGroup{}, c.fail("group.update", "No se pudo guardar el grupo", err)
	}

	applied := c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
		if server.ID != id {
			for _, t := range s.Tasks {
				if t.GroupID == id {
					t.GroupID = server.ID
					s = s.UpdateTask(t)
				}
			}
			s = s.DeleteTaskGroup(id)
		}
		s = s.UpdateTaskGroup(server)
		if _, ok := s.GroupByID(server.ID); !ok {
			s = s.AddTaskGroup(server)
		}
		return s
	}, server.ID)
	if !applied {
		log.Warn().Str("id", id).Msg("discarded stale group response")
		return server, nil
	}
	if server.ID != id {
		c.recordAlias(id, server.ID)
	}
	return server, nil
}

// pushGroupCreate runs the optimistic create protocol for task groups.
func (c *Coordinator) pushGroupCreate(ctx context.Context, g domain.TaskGroup) (domain.TaskGroup, error) {
	tempID := g.ID
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddTaskGroup(g)
	}, tempID)

	server, err := c.remote.CreateTaskGroup(ctx, g)
	if err != nil {
		c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
			return s.DeleteTaskGroup(tempID)
		})
		return domain.TaskGroup{}, c.fail("group.create", "No se pudo guardar el grupo", err)
	}

	applied := c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
		// Tasks created against the temporary id while the create was in
		// flight follow the durable id instead of being cascaded away.
		for _, t := range s.Tasks {
			if t.GroupID == tempID {
				t.GroupID = server.ID
				s = s.UpdateTask(t)
			}
		}
		return s.DeleteTaskGroup(tempID).AddTaskGroup(server)
	}, server.ID)
	if !applied {
		log.Warn().Str("id", tempID).Msg("discarded stale group response")
		return server, nil
	}
	c.recordAlias(tempID, server.ID)
	return server, nil
}
