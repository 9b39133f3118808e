package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventDisplayRange_AllDay(t *testing.T) {
	e := Event{
		Title:      "Trip",
		CalendarID: "1",
		AllDay:     true,
		StartDate:  "2025-08-25",
		EndDate:    "2025-08-26",
	}
	start, end := e.DisplayRange()
	assert.Equal(t, "2025-08-25", start)
	assert.Equal(t, "2025-08-26", end)

	// Missing end date falls back to the start date, never a day later.
	e.EndDate = ""
	start, end = e.DisplayRange()
	assert.Equal(t, "2025-08-25", start)
	assert.Equal(t, "2025-08-25", end)
}

func TestEventDisplayRange_Timed(t *testing.T) {
	e := Event{
		Title:      "Sync",
		CalendarID: "1",
		StartDate:  "2025-08-25",
		StartTime:  "09:00",
		EndTime:    "09:30",
	}
	start, end := e.DisplayRange()
	assert.Equal(t, "2025-08-25T09:00", start)
	assert.Equal(t, "2025-08-25T09:30", end)
}

func TestEventDisplayRange_DefaultsMissingTimes(t *testing.T) {
	e := Event{StartDate: "2025-08-25"}
	start, end := e.DisplayRange()
	assert.Equal(t, "2025-08-25T09:00", start)
	// End time defaults to the start time ("00:00" here since none was
	// given), which is before 09:00 on the same day, so it is nudged.
	assert.Equal(t, "2025-08-25T09:15", end)
}

func TestEventDisplayRange_NudgesNonPositiveInterval(t *testing.T) {
	e := Event{
		StartDate: "2025-08-25",
		StartTime: "09:30",
		EndDate:   "2025-08-25",
		EndTime:   "09:00",
	}
	start, end := e.DisplayRange()
	assert.Equal(t, "2025-08-25T09:30", start)
	assert.Equal(t, "2025-08-25T09:45", end)
	// The stored end time is untouched.
	assert.Equal(t, "09:00", e.EndTime)
}

func TestEventDisplayRange_MultiDayTimedNotNudged(t *testing.T) {
	e := Event{
		StartDate: "2025-08-25",
		StartTime: "22:00",
		EndDate:   "2025-08-26",
		EndTime:   "01:00",
	}
	start, end := e.DisplayRange()
	assert.Equal(t, "2025-08-25T22:00", start)
	assert.Equal(t, "2025-08-26T01:00", end)
}

func TestTaskDisplayRange(t *testing.T) {
	// No date at all.
	start, end := (Task{}).DisplayRange()
	assert.Empty(t, start)
	assert.Empty(t, end)

	// Date only renders all-day.
	start, end = (Task{StartDate: "2025-08-25"}).DisplayRange()
	assert.Equal(t, "2025-08-25", start)
	assert.Empty(t, end)

	// Timed tasks get the fixed short duration.
	start, end = (Task{StartDate: "2025-08-25", StartTime: "23:45"}).DisplayRange()
	assert.Equal(t, "2025-08-25T23:45", start)
	assert.Equal(t, "2025-08-26T00:15", end)
}

func TestEventWireDates(t *testing.T) {
	allDay := Event{AllDay: true, StartDate: "2025-08-25", EndDate: "2025-08-26"}
	sd, ed := allDay.WireDates()
	assert.Equal(t, "2025-08-25", sd)
	assert.Equal(t, "2025-08-26", ed)

	timed := Event{StartDate: "2025-08-25", StartTime: "09:00", EndTime: "09:30"}
	sd, ed = timed.WireDates()
	assert.Equal(t, "2025-08-25T09:00", sd)
	assert.Equal(t, "2025-08-25T09:30", ed)

	// Missing times default to 00:00 on the wire.
	bare := Event{StartDate: "2025-08-25", EndDate: "2025-08-26"}
	sd, ed = bare.WireDates()
	assert.Equal(t, "2025-08-25T00:00", sd)
	assert.Equal(t, "2025-08-26T00:00", ed)
}

func TestEventApplyWireDates(t *testing.T) {
	var timed Event
	timed.ApplyWireDates("2025-08-25T09:00:00", "2025-08-25T09:30:00")
	assert.Equal(t, "2025-08-25", timed.StartDate)
	assert.Equal(t, "09:00", timed.StartTime)
	assert.Equal(t, "2025-08-25", timed.EndDate)
	assert.Equal(t, "09:30", timed.EndTime)

	allDay := Event{AllDay: true}
	allDay.ApplyWireDates("2025-08-25T00:00:00", "2025-08-26T00:00:00")
	assert.Equal(t, "2025-08-25", allDay.StartDate)
	assert.Empty(t, allDay.StartTime)
	assert.Equal(t, "2025-08-26", allDay.EndDate)
	assert.Empty(t, allDay.EndTime)
}

func TestSplitStamp(t *testing.T) {
	d, tod := SplitStamp("2025-08-25T09:00")
	assert.Equal(t, "2025-08-25", d)
	assert.Equal(t, "09:00", tod)

	d, tod = SplitStamp("2025-08-25 09:00:00")
	assert.Equal(t, "2025-08-25", d)
	assert.Equal(t, "09:00", tod)

	d, tod = SplitStamp("2025-08-25")
	assert.Equal(t, "2025-08-25", d)
	assert.Empty(t, tod)

	d, tod = SplitStamp("")
	assert.Empty(t, d)
	assert.Empty(t, tod)
}
