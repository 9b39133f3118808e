package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// SaveCalendar creates or updates a calendar optimistically. An empty
// id means create.
func (c *Coordinator) SaveCalendar(ctx context.Context, cal domain.Calendar) (domain.Calendar, error) {
	if strings.TrimSpace(cal.Title) == "" {
		return domain.Calendar{}, domain.ErrEmptyTitle
	}

	if cal.ID == "" {
		cal.ID = domain.NewTemporaryID()
		release := c.guard.acquire(cal.ID)
		defer release()
		return c.pushCalendarCreate(ctx, cal)
	}

	id := c.resolve(cal.ID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	prior, ok := c.store.Current().CalendarByID(id)
	if !ok {
		return domain.Calendar{}, domain.ErrCalendarNotFound
	}
	cal.ID = id

	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.UpdateCalendar(cal)
	}, id)

	var server domain.Calendar
	var err error
	if domain.IsTemporary(id) {
		server, err = c.remote.CreateCalendar(ctx, cal)
	} else {
		server, err = c.remote.UpdateCalendar(ctx, cal)
	}
	if err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			return s.UpdateCalendar(prior)
		})
		return domain.Calendar{}, c.fail("calendar.update", "No se pudo guardar el calendario", err)
	}

	applied := c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
		if server.ID != id {
			// Promotion: repoint owned events at the durable id.
			for _, e := range s.Events {
				if e.CalendarID == id {
					e.CalendarID = server.ID
					s = s.UpdateEvent(e)
				}
			}
			s = s.DeleteCalendar(id)
		}
		s = s.UpdateCalendar(server)
		if _, ok := s.CalendarByID(server.ID); !ok {
			s = s.AddCalendar(server)
		}
		return s
	}, server.ID)
	if !applied {
		log.Warn().Str("id", id).Msg("discarded stale calendar response")
		return server, nil
	}
	if server.ID != id {
		c.recordAlias(id, server.ID)
	}
	return server, nil
}

// pushCalendarCreate runs the optimistic create protocol for calendars.
func (c *Coordinator) pushCalendarCreate(ctx context.Context, cal domain.Calendar) (domain.Calendar, error) {
	tempID := cal.ID
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddCalendar(cal)
	}, tempID)

	server, err := c.remote.CreateCalendar(ctx, cal)
	if err != nil {
		c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
			return s.DeleteCalendar(tempID)
		})
		return domain.Calendar{}, c.fail("calendar.create", "No se pudo guardar el calendario", err)
	}

	applied := c.store.ApplyIf(tempID, rev, func(s store.Snapshot) store.Snapshot {
		// Events created against the temporary id while the create was
		// in flight must survive the cascade and follow the durable id.
		for _, e := range s.Events {
			if e.CalendarID == tempID {
				e.CalendarID = server.ID
				s = s.UpdateEvent(e)
			}
		}
		return s.DeleteCalendar(tempID).AddCalendar(server)
	}, server.ID)
	if !applied {
		log.Warn().Str("id", tempID).Msg("discarded stale calendar response")
		return server, nil
	}
	c.recordAlias(tempID, server.ID)
	return server, nil
}
