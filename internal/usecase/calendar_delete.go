package usecase

import (
	"context"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// DeleteCalendar removes a calendar and, by cascade, its events. A
// failed remote delete restores the calendar together with the cascaded
// events.
func (c *Coordinator) DeleteCalendar(ctx context.Context, calendarID string) error {
	id := c.resolve(calendarID)
	release := c.guard.acquire(id)
	defer release()
	id = c.resolve(id)

	snap := c.store.Current()
	prior, ok := snap.CalendarByID(id)
	if !ok {
		return domain.ErrCalendarNotFound
	}
	var owned []domain.Event
	stamped := []string{id}
	for _, e := range snap.Events {
		if e.CalendarID == id {
			owned = append(owned, e)
			stamped = append(stamped, e.ID)
		}
	}

	// The cascaded events are stamped along with the calendar, so a
	// reply to an in-flight event mutation reads as stale instead of
	// resurrecting the event into a store without its calendar.
	rev := c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.DeleteCalendar(id)
	}, stamped...)

	if domain.IsTemporary(id) {
		return nil
	}

	if err := c.remote.DeleteCalendar(ctx, id); err != nil {
		c.store.ApplyIf(id, rev, func(s store.Snapshot) store.Snapshot {
			s = s.AddCalendar(prior)
			for _, e := range owned {
				s = s.UpsertEvent(e)
			}
			return s
		}, stamped[1:]...)
		return c.fail("calendar.delete", "No se pudo eliminar el calendario", err)
	}
	return nil
}
