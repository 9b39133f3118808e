package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// SaveEventInput carries the editor's desired final state for an event.
// An empty ID means create.
type SaveEventInput struct {
	Event domain.Event
}

// SaveEvent creates or updates an event optimistically. The returned
// event is the server's canonical representation (durable id, server
// defaults) on success.
func (c *Coordinator) SaveEvent(ctx context.Context, in SaveEventInput) (domain.Event, error) {
	ev := in.Event
	if strings.TrimSpace(ev.Title) == "" {
		return domain.Event{}, domain.ErrEmptyTitle
	}
	if ev.CalendarID == "" {
		return domain.Event{}, domain.ErrNoCalendar
	}
	if ev.AllDay {
		ev.StartTime, ev.EndTime = "", ""
	}

	if ev.ID == "" {
		ev.ID = domain.NewTemporaryID()
		release := c.guard.acquire(ev.ID)
		defer release()
		return c.pushEventCreate(ctx, ev)
	}

	id := c.resolve(ev.ID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id) // the create in flight may have promoted it

	prior, ok := c.store.Current().EventByID(id)
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	ev.ID = id
	return c.pushEventUpdate(ctx, prior, ev)
}

// pushEventCreate runs the optimistic create protocol. The guard for
// ev.ID must be held; ev.ID is a temporary id.
func (c *Coordinator) pushEventCreate(ctx context.Context, ev domain.Event) (domain.Event, error) {
	tempID := ev.ID
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddEvent(ev)
	}, tempID)

	server, err := c.remote.CreateEvent(ctx, ev)
	if err != nil {
		c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
			return s.DeleteEvent(tempID)
		})
		return domain.Event{}, c.fail("event.create", "No se pudo guardar el evento", err)
	}

	applied := c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
		return s.DeleteEvent(tempID).UpsertEvent(server)
	}, server.ID)
	if !applied {
		log.Warn().Str("id", tempID).Msg("discarded stale create response")
		return server, nil
	}
	c.recordAlias(tempID, server.ID)
	log.Debug().Str("temp", tempID).Str("id", server.ID).Msg("event created")
	return server, nil
}

// pushEventUpdate runs the optimistic update protocol for the full
// desired state ev, whose id matches prior's. The guard must be held.
// An event still carrying a temporary id is created instead, since
// temporary ids are never sent to the backend.
func (c *Coordinator) pushEventUpdate(ctx context.Context, prior, ev domain.Event) (domain.Event, error) {
	id := ev.ID
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.UpdateEvent(ev)
	}, id)

	var server domain.Event
	var err error
	if domain.IsTemporary(id) {
		server, err = c.remote.CreateEvent(ctx, ev)
	} else {
		server, err = c.remote.UpdateEvent(ctx, id, ev)
	}
	if err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			return s.UpdateEvent(prior)
		})
		return domain.Event{}, c.fail("event.update", "No se pudo guardar el evento", err)
	}

	applied := c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
		if server.ID != id {
			s = s.DeleteEvent(id)
		}
		return s.UpsertEvent(server)
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
