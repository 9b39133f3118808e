package grid

import (
	"context"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// Gestures turns grid interactions into coordinator mutations. It is
// the only mutation path the UI shells use for drag-level edits.
type Gestures struct {
	coord *usecase.Coordinator
}

// NewGestures binds the gesture translator to a coordinator.
func NewGestures(coord *usecase.Coordinator) *Gestures {
	return &Gestures{coord: coord}
}

// Drop handles an item dragged to a new slot. start and end are display
// stamps from the grid; tasks ignore end because they have no duration
// of their own.
func (g *Gestures) Drop(ctx context.Context, kind Kind, id, start, end string, allDay bool) error {
	startDate, startTime := domain.SplitStamp(start)
	endDate, endTime := domain.SplitStamp(end)

	switch kind {
	case KindEvent:
		if endDate == "" {
			endDate = startDate
		}
		_, err := g.coord.MoveEvent(ctx, usecase.MoveEventInput{
			ID:        id,
			StartDate: startDate,
			EndDate:   endDate,
			StartTime: startTime,
			EndTime:   endTime,
			AllDay:    allDay,
		})
		return err
	case KindTask:
		prior, ok := g.coord.Store().Current().TaskByID(id)
		if !ok {
			return domain.ErrTaskNotFound
		}
		prior.StartDate = startDate
		prior.StartTime = startTime
		_, err := g.coord.SaveTask(ctx, usecase.SaveTaskInput{Task: prior})
		return err
	}
	return nil
}

// Resize handles an event's end handle being dragged. Only events
// resize; the projection never marks tasks duration-editable.
func (g *Gestures) Resize(ctx context.Context, id, start, end string, allDay bool) error {
	return g.Drop(ctx, KindEvent, id, start, end, allDay)
}

// Toggle flips a task's done state from its grid checkbox.
func (g *Gestures) Toggle(ctx context.Context, id string) error {
	_, err := g.coord.ToggleTask(ctx, id)
	return err
}

// Draft is the editor prefill produced by a click.
type Draft struct {
	Kind      Kind
	ID        string
	Title     string
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
	AllDay    bool
	ParentID  string // calendar or group id
	Done      bool
}

// DraftForDate prefills a creation editor from a click on an empty day
// cell.
func (g *Gestures) DraftForDate(date string) Draft {
	return Draft{
		Kind:      KindEvent,
		StartDate: date,
		EndDate:   date,
		AllDay:    true,
	}
}

// DraftForItem prefills an edit editor from a click on an existing
// item.
func (g *Gestures) DraftForItem(kind Kind, id string) (Draft, bool) {
	snap := g.coord.Store().Current()
	switch kind {
	case KindEvent:
		e, ok := snap.EventByID(id)
		if !ok {
			return Draft{}, false
		}
		return Draft{
			Kind:      KindEvent,
			ID:        e.ID,
			Title:     e.Title,
			StartDate: e.StartDate,
			StartTime: e.StartTime,
			EndDate:   e.EffectiveEndDate(),
			EndTime:   e.EndTime,
			AllDay:    e.AllDay,
			ParentID:  e.CalendarID,
		}, true
	case KindTask:
		t, ok := snap.TaskByID(id)
		if !ok {
			return Draft{}, false
		}
		return Draft{
			Kind:      KindTask,
			ID:        t.ID,
			Title:     t.Title,
			StartDate: t.StartDate,
			StartTime: t.StartTime,
			ParentID:  t.GroupID,
			Done:      t.Done,
		}, true
	}
	return Draft{}, false
}
