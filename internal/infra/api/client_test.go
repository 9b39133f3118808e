package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]eventWire{})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/", Token: "secreto"})
	_, err := c.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secreto", gotAuth)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Evento no encontrado", "detail": "id=99"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	err := c.DeleteEvent(context.Background(), "99")
	require.Error(t, err)

	re := domain.AsRemoteError(err)
	require.NotNil(t, re)
	assert.Equal(t, 404, re.Status)
	assert.Equal(t, "Evento no encontrado: id=99", re.Message)
	assert.True(t, re.ShapeRejection())
}

func TestCreateEventRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/events", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Dentista", body["title"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"id": 7, "calendar_id": 1, "title": "Dentista",
			"start_date": "2025-08-25T09:00:00", "end_date": "2025-08-25T10:00:00",
			"all_day": false
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	ev, err := c.CreateEvent(context.Background(), domain.Event{
		Title: "Dentista", CalendarID: "1",
		StartDate: "2025-08-25", StartTime: "09:00",
		EndDate: "2025-08-25", EndTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "7", ev.ID)
	assert.Equal(t, "09:00", ev.StartTime)
}

func TestUpdateUserTaskFallsBackThroughVerbs(t *testing.T) {
	var verbs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verbs = append(verbs, r.Method)
		switch r.Method {
		case http.MethodPut, http.MethodPatch:
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(`{"error": "method not allowed"}`))
		case http.MethodPost:
			assert.Equal(t, "PUT", r.URL.Query().Get("_method"))
			assert.Equal(t, "PUT", r.Header.Get("X-Http-Method-Override"))
			_, _ = w.Write([]byte(`{"id": 20, "task_group_id": 2, "title": "Comprar pan", "status": true}`))
		}
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	done := true
	title := "Comprar pan"
	tk, err := c.UpdateUserTask(context.Background(), "7", "20", domain.TaskPatch{Title: &title, Done: &done})
	require.NoError(t, err)
	assert.True(t, tk.Done)
	assert.Equal(t, []string{"PUT", "PATCH", "POST"}, verbs)
}

func TestUpdateUserTaskWrapped405FallsThrough(t *testing.T) {
	// Some deployments answer a blocked verb with a 500 whose message
	// carries the 405.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{"id": 20, "title": "Comprar pan", "status": false}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "405 Method Not Allowed"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	title := "Comprar pan"
	_, err := c.UpdateUserTask(context.Background(), "7", "20", domain.TaskPatch{Title: &title})
	require.NoError(t, err)
}

func TestUpdateUserTaskStatusOnlyReachesToggle(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/api/users/7/tasks/20/toggle" {
			_, _ = w.Write([]byte(`{"id": 20, "task_group_id": 2, "title": "Comprar pan", "status": true}`))
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	done := true
	tk, err := c.UpdateUserTask(context.Background(), "7", "20", domain.TaskPatch{Done: &done})
	require.NoError(t, err)
	assert.True(t, tk.Done)
	assert.Equal(t, "POST /api/users/7/tasks/20/toggle", paths[len(paths)-1])
}

func TestUpdateUserTaskRealErrorStopsTheChain(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "token caducado"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	title := "x"
	_, err := c.UpdateUserTask(context.Background(), "7", "20", domain.TaskPatch{Title: &title})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "a non-verb rejection is final")
	re := domain.AsRemoteError(err)
	require.NotNil(t, re)
	assert.Equal(t, 401, re.Status)
	assert.False(t, re.ShapeRejection())
}

func TestUpdateUserTaskOverrideSurfacesRealError(t *testing.T) {
	// PUT and PATCH are verb-rejected; the override POST reaches the
	// handler and fails validation. The caller must see that 400, not a
	// fabricated 405.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "La fecha no es válida"}`))
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	date := "2025-13-99"
	_, err := c.UpdateUserTask(context.Background(), "7", "20", domain.TaskPatch{Date: &date})
	require.Error(t, err)
	re := domain.AsRemoteError(err)
	require.NotNil(t, re)
	assert.Equal(t, 400, re.Status)
	assert.Equal(t, "La fecha no es válida", re.Message)
}

func TestDeleteUserTaskOverrideFallback(t *testing.T) {
	var verbs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verbs = append(verbs, r.Method)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		assert.Equal(t, "DELETE", r.URL.Query().Get("_method"))
		_, _ = w.Write([]byte(`{"msg": "Tarea eliminada correctamente"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, c.DeleteUserTask(context.Background(), "7", "20"))
	assert.Equal(t, []string{"DELETE", "POST"}, verbs)
}
