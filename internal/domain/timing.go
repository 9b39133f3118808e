package domain

import (
	"strings"
	"time"
)

// Date/time layouts used across the editor, the grid and the wire format.
const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04"
	StampLayout = "2006-01-02T15:04"
)

// Editor defaults and display policies.
const (
	DefaultStartTime = "09:00"
	// NudgeMinutes is added to a displayed end time that would otherwise
	// produce a non-positive interval on the same day. Display only; the
	// stored end time is not touched.
	NudgeMinutes = 15
	// TaskDisplayMinutes is the fixed visual duration of a timed task.
	TaskDisplayMinutes = 30
)

// CombineStamp joins a date and an optional time-of-day into a stamp:
// "2025-08-25" + "09:00" -> "2025-08-25T09:00"; an empty time yields the
// bare date.
func CombineStamp(date, tod string) string {
	if date == "" {
		return ""
	}
	if tod == "" {
		return date
	}
	return date + "T" + tod
}

// SplitStamp is the inverse of CombineStamp. Trailing seconds and zone
// suffixes the backend may add are dropped from the time part.
func SplitStamp(stamp string) (date, tod string) {
	if stamp == "" {
		return "", ""
	}
	stamp = strings.Replace(stamp, " ", "T", 1)
	date, tod, found := strings.Cut(stamp, "T")
	if !found {
		return date, ""
	}
	if len(tod) > len(TimeLayout) {
		tod = tod[:len(TimeLayout)]
	}
	return date, tod
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a well-formed HH:MM time of day.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// addMinutes shifts a date+time pair forward, rolling over midnight.
func addMinutes(date, tod string, minutes int) (string, string) {
	t, err := time.Parse(StampLayout, date+"T"+tod)
	if err != nil {
		return date, tod
	}
	t = t.Add(time.Duration(minutes) * time.Minute)
	return t.Format(DateLayout), t.Format(TimeLayout)
}

// DisplayRange derives the renderable start/end stamps for an event.
//
// All-day events keep date-only stamps and the end date is NOT advanced
// past the stored one; a missing end falls back to the start date, which
// avoids the classic off-by-one-day rendering. Timed events default a
// missing start time to 09:00 and a missing end time to the start time,
// and an end at or before the start on the same day is nudged forward by
// NudgeMinutes purely for display.
func (e Event) DisplayRange() (start, end string) {
	if e.AllDay {
		return e.StartDate, e.EffectiveEndDate()
	}
	startTime := e.StartTime
	if startTime == "" {
		startTime = DefaultStartTime
	}
	endDate := e.EffectiveEndDate()
	endTime := e.EndTime
	if endTime == "" {
		endTime = e.StartTime
		if endTime == "" {
			endTime = "00:00"
		}
	}
	if endDate == e.StartDate && endTime <= startTime {
		endDate, endTime = addMinutes(e.StartDate, startTime, NudgeMinutes)
	}
	return CombineStamp(e.StartDate, startTime), CombineStamp(endDate, endTime)
}

// DisplayRange derives the renderable start/end stamps for a task. A
// dateless task yields empty stamps; a timeless one renders all-day with
// no end; a timed one gets the fixed short duration.
func (t Task) DisplayRange() (start, end string) {
	if t.StartDate == "" {
		return "", ""
	}
	if t.StartTime == "" {
		return t.StartDate, ""
	}
	endDate, endTime := addMinutes(t.StartDate, t.StartTime, TaskDisplayMinutes)
	return CombineStamp(t.StartDate, t.StartTime), CombineStamp(endDate, endTime)
}

// WireDates produces the start_date/end_date strings for the event wire
// body: bare ISO dates when all-day, date-times otherwise, with missing
// times defaulting to "00:00".
func (e Event) WireDates() (startDate, endDate string) {
	end := e.EffectiveEndDate()
	if e.AllDay {
		return e.StartDate, end
	}
	st := e.StartTime
	if st == "" {
		st = "00:00"
	}
	et := e.EndTime
	if et == "" {
		et = "00:00"
	}
	return CombineStamp(e.StartDate, st), CombineStamp(end, et)
}

// ApplyWireDates is the inverse of WireDates: it fills the split fields
// from wire stamps, clearing the time parts when all-day.
func (e *Event) ApplyWireDates(startDate, endDate string) {
	e.StartDate, e.StartTime = SplitStamp(startDate)
	e.EndDate, e.EndTime = SplitStamp(endDate)
	if e.AllDay {
		e.StartTime = ""
		e.EndTime = ""
	}
}

// Today formats a time as a local YYYY-MM-DD date string.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
