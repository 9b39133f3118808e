package api

import (
	"context"
	"net/http"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// ListEvents fetches all events of the authenticated user.
func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var wires []eventWire
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &wires); err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(wires))
	for _, w := range wires {
		events = append(events, eventFromWire(w))
	}
	return events, nil
}

// CreateEvent creates an event and returns the server's representation.
// The event's local id, temporary or not, is never sent.
func (c *Client) CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	var w eventWire
	if err := c.do(ctx, http.MethodPost, "/api/events", eventBody(e), &w); err != nil {
		return domain.Event{}, err
	}
	return eventFromWire(w), nil
}

// UpdateEvent replaces an event's fields. id must be durable.
func (c *Client) UpdateEvent(ctx context.Context, id string, e domain.Event) (domain.Event, error) {
	var w eventWire
	if err := c.do(ctx, http.MethodPut, "/api/events/"+id, eventBody(e), &w); err != nil {
		return domain.Event{}, err
	}
	return eventFromWire(w), nil
}

// DeleteEvent removes an event. id must be durable.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+id, nil, nil)
}
