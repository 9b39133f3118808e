package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// ListUserTasks fetches the user's tasks, flat.
func (c *Client) ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	var wires []taskWire
	if err := c.do(ctx, http.MethodGet, "/api/users/"+userID+"/tasks", nil, &wires); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(wires))
	for _, w := range wires {
		tasks = append(tasks, taskFromWire(w))
	}
	return tasks, nil
}

// CreateTaskInGroup creates a task bound to groupID. Group membership is
// part of the creation route, not the body.
func (c *Client) CreateTaskInGroup(ctx context.Context, userID, groupID string, t domain.Task) (domain.Task, error) {
	path := "/api/users/" + userID + "/groups/" + groupID + "/tasks"
	var w taskWire
	if err := c.do(ctx, http.MethodPost, path, taskBody(t), &w); err != nil {
		return domain.Task{}, err
	}
	out := taskFromWire(w)
	if out.GroupID == "" {
		out.GroupID = groupID
	}
	return out, nil
}

// UpdateUserTask patches a task. Deployments differ in which verbs the
// task route accepts, so rejected verbs are retried down a fixed chain:
// PUT, then PATCH, then POST with a method override, and finally the
// /toggle route when the patch only flips the status.
func (c *Client) UpdateUserTask(ctx context.Context, userID, id string, patch domain.TaskPatch) (domain.Task, error) {
	path := "/api/users/" + userID + "/tasks/" + id
	body := patchBody(patch)

	for _, verb := range []string{http.MethodPut, http.MethodPatch} {
		status, raw, err := c.roundTrip(ctx, verb, path, nil, nil, body)
		if err != nil {
			return domain.Task{}, err
		}
		if status >= 200 && status <= 299 {
			return decodeTask(raw)
		}
		if !methodNotAllowed(status, raw) {
			return domain.Task{}, remoteErr(status, raw)
		}
		log.Debug().Str("verb", verb).Str("path", path).Msg("verb rejected, trying next")
	}

	{
		q := url.Values{"_method": {"PUT"}}
		h := http.Header{"X-Http-Method-Override": {"PUT"}}
		status, raw, err := c.roundTrip(ctx, http.MethodPost, path, q, h, body)
		if err != nil {
			return domain.Task{}, err
		}
		if status >= 200 && status <= 299 {
			return decodeTask(raw)
		}
		if !methodNotAllowed(status, raw) {
			return domain.Task{}, remoteErr(status, raw)
		}
		log.Debug().Str("path", path).Msg("override rejected, trying toggle")
	}

	if patch.Done != nil && patch.Title == nil && patch.Date == nil && patch.GroupID == nil {
		toggle := struct {
			Status bool `json:"status"`
		}{Status: *patch.Done}
		status, raw, err := c.roundTrip(ctx, http.MethodPost, path+"/toggle", nil, nil, toggle)
		if err != nil {
			return domain.Task{}, err
		}
		if status >= 200 && status <= 299 {
			return decodeTask(raw)
		}
		if !methodNotAllowed(status, raw) {
			return domain.Task{}, remoteErr(status, raw)
		}
	}

	return domain.Task{}, &domain.RemoteError{
		Status:  http.StatusMethodNotAllowed,
		Message: "No se pudo actualizar la tarea: PUT/PATCH/override/toggle no disponibles",
	}
}

// DeleteUserTask removes a task, falling back to a POST with a method
// override when DELETE itself is rejected.
func (c *Client) DeleteUserTask(ctx context.Context, userID, id string) error {
	path := "/api/users/" + userID + "/tasks/" + id

	status, raw, err := c.roundTrip(ctx, http.MethodDelete, path, nil, nil, nil)
	if err != nil {
		return err
	}
	if status >= 200 && status <= 299 {
		return nil
	}
	if !methodNotAllowed(status, raw) {
		return remoteErr(status, raw)
	}

	q := url.Values{"_method": {"DELETE"}}
	h := http.Header{"X-Http-Method-Override": {"DELETE"}}
	status, raw, err = c.roundTrip(ctx, http.MethodPost, path, q, h, nil)
	if err != nil {
		return err
	}
	if status >= 200 && status <= 299 {
		return nil
	}
	return remoteErr(status, raw)
}

func decodeTask(raw []byte) (domain.Task, error) {
	var w taskWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return domain.Task{}, err
	}
	return taskFromWire(w), nil
}
