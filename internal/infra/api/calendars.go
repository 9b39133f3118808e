package api

import (
	"context"
	"net/http"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// ListCalendars fetches the user's calendars.
func (c *Client) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	var wires []calendarWire
	if err := c.do(ctx, http.MethodGet, "/api/calendars", nil, &wires); err != nil {
		return nil, err
	}
	cals := make([]domain.Calendar, 0, len(wires))
	for _, w := range wires {
		cals = append(cals, calendarFromWire(w))
	}
	return cals, nil
}

// CreateCalendar creates a calendar.
func (c *Client) CreateCalendar(ctx context.Context, cal domain.Calendar) (domain.Calendar, error) {
	var w calendarWire
	if err := c.do(ctx, http.MethodPost, "/api/calendars", calendarBody(cal), &w); err != nil {
		return domain.Calendar{}, err
	}
	return calendarFromWire(w), nil
}

// UpdateCalendar replaces a calendar's fields.
func (c *Client) UpdateCalendar(ctx context.Context, cal domain.Calendar) (domain.Calendar, error) {
	var w calendarWire
	if err := c.do(ctx, http.MethodPut, "/api/calendars/"+cal.ID, calendarBody(cal), &w); err != nil {
		return domain.Calendar{}, err
	}
	return calendarFromWire(w), nil
}

// DeleteCalendar removes a calendar.
func (c *Client) DeleteCalendar(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/calendars/"+id, nil, nil)
}
