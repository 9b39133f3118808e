package tui

import (
	"time"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// monthNames holds the Spanish month names indexed by time.Month.
var monthNames = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// weekdayNames holds the Spanish weekday abbreviations, Monday first.
var weekdayNames = [7]string{"lun", "mar", "mié", "jue", "vie", "sáb", "dom"}

// parseDate converts a bare "2006-01-02" date to a time. Invalid input
// falls back to the zero time; callers only hand it dates produced by
// formatDate or the store.
func parseDate(date string) time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return t
}

// formatDate renders a time as the bare date used throughout the store.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// addDays shifts a bare date by n days.
func addDays(date string, n int) string {
	return formatDate(parseDate(date).AddDate(0, 0, n))
}

// addMonths shifts a bare date by n months, clamping the day so that
// jumping from Jan 31 lands on the last day of February rather than
// spilling into March.
func addMonths(date string, n int) string {
	t := parseDate(date)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return formatDate(time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC))
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// mondayIndex maps a weekday to its column in a Monday-first week.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// monthGrid returns the bare dates of the month view containing date:
// full weeks from Monday, covering the whole month, so the result is
// always a multiple of 7 between 28 and 42 entries.
func monthGrid(date string) []string {
	t := parseDate(date)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -mondayIndex(first.Weekday()))
	last := time.Date(t.Year(), t.Month(), daysIn(t.Year(), t.Month()), 0, 0, 0, 0, time.UTC)
	end := last.AddDate(0, 0, 6-mondayIndex(last.Weekday()))

	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, formatDate(d))
	}
	return out
}

// sameMonth reports whether two bare dates fall in the same month.
func sameMonth(a, b string) bool {
	ta, tb := parseDate(a), parseDate(b)
	return ta.Year() == tb.Year() && ta.Month() == tb.Month()
}

// monthTitle renders "agosto 2025" for the month containing date.
func monthTitle(date string) string {
	t := parseDate(date)
	return monthNames[t.Month()] + " " + t.Format("2006")
}

// weekRange returns the Monday and Sunday of the week containing date.
func weekRange(date string) (monday, sunday string) {
	t := parseDate(date)
	m := t.AddDate(0, 0, -mondayIndex(t.Weekday()))
	return formatDate(m), formatDate(m.AddDate(0, 0, 6))
}

// todayOf converts a clock reading to the bare date the grid keys on.
func todayOf(c domain.Clock) string {
	return formatDate(c.Now())
}
