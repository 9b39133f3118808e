package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

func TestWireIDDecodesNumbersAndStrings(t *testing.T) {
	var w struct {
		ID wireID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &w))
	assert.Equal(t, wireID("42"), w.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "42"}`), &w))
	assert.Equal(t, wireID("42"), w.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &w))
	assert.Equal(t, wireID(""), w.ID)
}

func TestWireIDMarshalsNumericAsNumber(t *testing.T) {
	b, err := json.Marshal(wireID("42"))
	require.NoError(t, err)
	assert.Equal(t, "42", string(b))

	b, err = json.Marshal(wireID("1724600000.123"))
	require.NoError(t, err)
	assert.Equal(t, `"1724600000.123"`, string(b), "non-durable ids stay strings")
}

func TestWireBoolTolerance(t *testing.T) {
	cases := map[string]bool{
		`true`:        true,
		`false`:       false,
		`null`:        false,
		`1`:           true,
		`0`:           false,
		`"done"`:      true,
		`"completed"`: true,
		`"true"`:      true,
		`"pending"`:   false,
		`""`:          false,
	}
	for in, want := range cases {
		var b wireBool
		require.NoError(t, json.Unmarshal([]byte(in), &b), in)
		assert.Equal(t, want, bool(b), in)
	}
}

func TestEventFromWire(t *testing.T) {
	raw := `{
		"id": 7, "calendar_id": 1, "title": "Dentista",
		"start_date": "2025-08-25T09:00:00", "end_date": "2025-08-25T10:00:00",
		"description": null, "color": "#ff0000"
	}`
	var w eventWire
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	e := eventFromWire(w)

	assert.Equal(t, "7", e.ID)
	assert.Equal(t, "1", e.CalendarID)
	assert.False(t, e.AllDay, "timed stamps imply a timed event")
	assert.Equal(t, "2025-08-25", e.StartDate)
	assert.Equal(t, "09:00", e.StartTime, "seconds dropped")
	assert.Equal(t, "10:00", e.EndTime)
	assert.Empty(t, e.Description)
	assert.Equal(t, "#ff0000", e.Color)
}

func TestEventFromWireInfersAllDay(t *testing.T) {
	var w eventWire
	require.NoError(t, json.Unmarshal([]byte(
		`{"id": 7, "title": "Viaje", "start_date": "2025-08-25", "end_date": "2025-08-27"}`,
	), &w))
	e := eventFromWire(w)
	assert.True(t, e.AllDay)
	assert.Equal(t, "2025-08-25", e.StartDate)
	assert.Equal(t, "2025-08-27", e.EndDate)
	assert.Empty(t, e.StartTime)
}

func TestEventBodyOmitsLocalID(t *testing.T) {
	e := domain.Event{
		ID: domain.NewTemporaryID(), Title: "Dentista", CalendarID: "1",
		StartDate: "2025-08-25", StartTime: "09:00", EndDate: "2025-08-25", EndTime: "10:00",
	}
	b, err := json.Marshal(eventBody(e))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "id", "local ids never travel in create/update bodies")
	assert.Equal(t, "2025-08-25T09:00", m["start_date"])
	assert.Equal(t, float64(1), m["calendar_id"], "durable foreign key goes as a number")
}

func TestTaskFromWireStripsMidnight(t *testing.T) {
	var w taskWire
	require.NoError(t, json.Unmarshal([]byte(
		`{"id": 20, "task_group_id": 2, "title": "Comprar pan", "status": 1, "date": "2025-08-25T00:00:00"}`,
	), &w))
	tk := taskFromWire(w)
	assert.Equal(t, "20", tk.ID)
	assert.Equal(t, "2", tk.GroupID)
	assert.True(t, tk.Done)
	assert.Equal(t, "2025-08-25", tk.StartDate)
	assert.Empty(t, tk.StartTime, "a midnight pad means a date-only task")
}

func TestPatchBodyCarriesOnlyNamedFields(t *testing.T) {
	done := true
	b, err := json.Marshal(patchBody(domain.TaskPatch{Done: &done}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": true}`, string(b))

	group := "3"
	b, err = json.Marshal(patchBody(domain.TaskPatch{GroupID: &group}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"task_group_id": 3}`, string(b))
}

func TestCalendarWireNameFallback(t *testing.T) {
	var w calendarWire
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "name": "Trabajo"}`), &w))
	assert.Equal(t, "Trabajo", calendarFromWire(w).Title)

	b, err := json.Marshal(calendarBody(domain.Calendar{Title: "Trabajo"}))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "Trabajo", m["title"])
	assert.Equal(t, "Trabajo", m["name"], "create route reads name, echo carries title")
}
