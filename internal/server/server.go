// Package server is an in-memory stand-in for the Kairos backend. It
// speaks the same REST contract as the production API, which makes it
// useful for offline demos and for exercising the client end to end.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// eventRecord is the stored event resource.
type eventRecord struct {
	ID          int     `json:"id"`
	CalendarID  *int    `json:"calendar_id"`
	Title       string  `json:"title"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	AllDay      bool    `json:"all_day"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// taskRecord is the stored task resource.
type taskRecord struct {
	ID      int     `json:"id"`
	GroupID *int    `json:"task_group_id"`
	Title   string  `json:"title"`
	Status  bool    `json:"status"`
	Date    *string `json:"date"`
	Color   *string `json:"color"`
}

// calendarRecord is the stored calendar resource.
type calendarRecord struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Color *string `json:"color"`
}

// groupRecord is the stored task-group resource.
type groupRecord struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Color *string `json:"color"`
}

// Server holds the in-memory state behind the REST routes. Ids are
// sequential integers, like the production database hands out.
type Server struct {
	mu        sync.Mutex
	events    map[int]eventRecord
	tasks     map[int]taskRecord
	calendars map[int]calendarRecord
	groups    map[int]groupRecord
	nextID    int
}

// New creates an empty demo backend.
func New() *Server {
	return &Server{
		events:    make(map[int]eventRecord),
		tasks:     make(map[int]taskRecord),
		calendars: make(map[int]calendarRecord),
		groups:    make(map[int]groupRecord),
		nextID:    1,
	}
}

// Handler returns the complete HTTP handler. The method-override
// rewrite wraps the router because it has to run before route matching;
// a mux middleware would fire too late for verbs the route rejects.
func (s *Server) Handler() http.Handler {
	return requestLog(methodOverride(s.router()))
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/events", s.listEvents).Methods(http.MethodGet)
	r.HandleFunc("/api/events", s.createEvent).Methods(http.MethodPost)
	r.HandleFunc("/api/events/{id:[0-9]+}", s.updateEvent).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/api/events/{id:[0-9]+}", s.deleteEvent).Methods(http.MethodDelete)

	r.HandleFunc("/api/calendars", s.listCalendars).Methods(http.MethodGet)
	r.HandleFunc("/api/calendars", s.createCalendar).Methods(http.MethodPost)
	r.HandleFunc("/api/calendars/{id:[0-9]+}", s.updateCalendar).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/api/calendars/{id:[0-9]+}", s.deleteCalendar).Methods(http.MethodDelete)

	r.HandleFunc("/api/task-groups", s.createGroup).Methods(http.MethodPost)
	r.HandleFunc("/api/task-groups/{id:[0-9]+}", s.updateGroup).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/api/task-groups/{id:[0-9]+}", s.deleteGroup).Methods(http.MethodDelete)
	r.HandleFunc("/api/users/{user:[0-9]+}/groups", s.listGroups).Methods(http.MethodGet)

	r.HandleFunc("/api/users/{user:[0-9]+}/tasks", s.listTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{user:[0-9]+}/groups/{group:[0-9]+}/tasks", s.createTaskInGroup).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{user:[0-9]+}/tasks/{id:[0-9]+}", s.updateTask).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/api/users/{user:[0-9]+}/tasks/{id:[0-9]+}", s.deleteTask).Methods(http.MethodDelete)
	r.HandleFunc("/api/users/{user:[0-9]+}/tasks/{id:[0-9]+}/toggle", s.toggleTask).Methods(http.MethodPost)

	return r
}

func (s *Server) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// requestLog logs every request at debug level.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("demo backend request")
		next.ServeHTTP(w, r)
	})
}

// methodOverride rewrites POSTs that carry a method override, the same
// escape hatch the production API honors for proxies that block
// PUT/DELETE.
func methodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			m := r.Header.Get("X-Http-Method-Override")
			if m == "" {
				m = r.URL.Query().Get("_method")
			}
			switch m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func pathID(r *http.Request, name string) int {
	id, _ := strconv.Atoi(mux.Vars(r)[name])
	return id
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo JSON inválido")
		return false
	}
	return true
}
