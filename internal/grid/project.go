// Package grid projects the store's state into renderable calendar
// items and translates grid gestures (drag, resize, click, toggle) into
// coordinator mutations. It holds no state of its own; every projection
// reads a fresh snapshot.
package grid

import (
	"sort"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// Kind distinguishes the two item families on the grid. Events and
// tasks live in different backend tables, so their ids may collide;
// the pair (Kind, ID) is the real key.
type Kind string

const (
	KindEvent Kind = "event"
	KindTask  Kind = "task"
)

// Palette is the color triple applied to a rendered item.
type Palette struct {
	Background string
	Border     string
	Text       string
}

// fallbackPalette renders items whose calendar or group is unknown,
// which happens transiently while a parent create is still in flight.
var fallbackPalette = Palette{Background: "#f3f4f6", Border: "#6b7280", Text: "#374151"}

// Item is one renderable block on the grid.
type Item struct {
	Kind    Kind
	ID      string
	Title   string
	Start   string // stamp or bare date
	End     string // empty means no explicit end
	AllDay  bool
	Done    bool // tasks only
	Pending bool // still carrying a temporary id
	Palette Palette

	// StartEditable allows dragging; DurationEditable allows resizing.
	// Tasks are a point in time, so they drag but never resize.
	StartEditable    bool
	DurationEditable bool
}

// eventPalette derives an event's colors from its owning calendar:
// translucent fill, invisible border, full-strength text.
func eventPalette(c domain.Calendar) Palette {
	return Palette{
		Background: c.Color + "30",
		Border:     c.Color + "00",
		Text:       c.Color,
	}
}

// taskPalette derives a task's colors from its group: transparent fill
// with a solid outline.
func taskPalette(g domain.TaskGroup) Palette {
	return Palette{
		Background: "#ffffff00",
		Border:     g.Color,
		Text:       g.Color,
	}
}

// Project flattens a snapshot into grid items ordered by start stamp,
// events before tasks on ties.
func Project(snap store.Snapshot) []Item {
	items := make([]Item, 0, len(snap.Events)+len(snap.Tasks))

	for _, e := range snap.Events {
		start, end := e.DisplayRange()
		pal := fallbackPalette
		if cal, ok := snap.CalendarByID(e.CalendarID); ok && cal.Color != "" {
			pal = eventPalette(cal)
		}
		items = append(items, Item{
			Kind:             KindEvent,
			ID:               e.ID,
			Title:            e.Title,
			Start:            start,
			End:              end,
			AllDay:           e.AllDay,
			Pending:          domain.IsTemporary(e.ID),
			Palette:          pal,
			StartEditable:    true,
			DurationEditable: true,
		})
	}

	for _, t := range snap.Tasks {
		start, end := t.DisplayRange()
		if start == "" {
			// Dateless tasks live in the agenda panel, not on the grid.
			continue
		}
		pal := fallbackPalette
		if g, ok := snap.GroupByID(t.GroupID); ok && g.Color != "" {
			pal = taskPalette(g)
		}
		items = append(items, Item{
			Kind:          KindTask,
			ID:            t.ID,
			Title:         t.Title,
			Start:         start,
			End:           end,
			AllDay:        t.StartTime == "",
			Done:          t.Done,
			Pending:       domain.IsTemporary(t.ID),
			Palette:       pal,
			StartEditable: true,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Start != items[j].Start {
			return items[i].Start < items[j].Start
		}
		return items[i].Kind == KindEvent && items[j].Kind == KindTask
	})
	return items
}

// ItemsOn returns the projected items overlapping a date.
func ItemsOn(snap store.Snapshot, date string) []Item {
	var out []Item
	for _, it := range Project(snap) {
		startDate, _ := domain.SplitStamp(it.Start)
		endDate := startDate
		if it.End != "" {
			endDate, _ = domain.SplitStamp(it.End)
		}
		if startDate <= date && date <= endDate {
			out = append(out, it)
		}
	}
	return out
}
