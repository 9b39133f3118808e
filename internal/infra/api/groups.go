package api

import (
	"context"
	"net/http"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// ListTaskGroups fetches the user's task groups.
func (c *Client) ListTaskGroups(ctx context.Context, userID string) ([]domain.TaskGroup, error) {
	var wires []groupWire
	if err := c.do(ctx, http.MethodGet, "/api/users/"+userID+"/groups", nil, &wires); err != nil {
		return nil, err
	}
	groups := make([]domain.TaskGroup, 0, len(wires))
	for _, w := range wires {
		groups = append(groups, groupFromWire(w))
	}
	return groups, nil
}

// CreateTaskGroup creates a task group.
func (c *Client) CreateTaskGroup(ctx context.Context, g domain.TaskGroup) (domain.TaskGroup, error) {
	var w groupWire
	if err := c.do(ctx, http.MethodPost, "/api/task-groups", groupBody(g), &w); err != nil {
		return domain.TaskGroup{}, err
	}
	return groupFromWire(w), nil
}

// UpdateTaskGroup replaces a group's fields.
func (c *Client) UpdateTaskGroup(ctx context.Context, g domain.TaskGroup) (domain.TaskGroup, error) {
	var w groupWire
	if err := c.do(ctx, http.MethodPut, "/api/task-groups/"+g.ID, groupBody(g), &w); err != nil {
		return domain.TaskGroup{}, err
	}
	return groupFromWire(w), nil
}

// DeleteTaskGroup removes a group.
func (c *Client) DeleteTaskGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/task-groups/"+id, nil, nil)
}
