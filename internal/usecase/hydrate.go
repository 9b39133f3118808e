package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// Hydrate fetches the full remote state and swaps it into the store in
// a single step. Collections are fetched in parallel; any failure
// aborts the swap and leaves the store untouched.
func (c *Coordinator) Hydrate(ctx context.Context) error {
	var (
		calendars []domain.Calendar
		groups    []domain.TaskGroup
		events    []domain.Event
		tasks     []domain.Task
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		calendars, err = c.remote.ListCalendars(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = c.remote.ListTaskGroups(ctx, c.userID)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = c.remote.ListEvents(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = c.remote.ListUserTasks(ctx, c.userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail("hydrate", "No se pudieron cargar los datos", err)
	}

	c.store.Apply(func(s store.Snapshot) store.Snapshot {
		return s.ReplaceAll(calendars, events, groups, tasks)
	})
	log.Debug().
		Int("calendars", len(calendars)).
		Int("groups", len(groups)).
		Int("events", len(events)).
		Int("tasks", len(tasks)).
		Msg("hydrated store")
	return nil
}
