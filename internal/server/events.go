package server

import (
	"net/http"
	"sort"
	"strings"
)

type eventInput struct {
	Title       *string `json:"title"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	AllDay      *bool   `json:"all_day"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	CalendarID  *int    `json:"calendar_id"`
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]eventRecord, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var in eventInput
	if !decodeBody(w, r, &in) {
		return
	}
	title := strings.TrimSpace(deref(in.Title))
	if title == "" {
		writeError(w, http.StatusBadRequest, "El título es requerido")
		return
	}
	start, end := deref(in.StartDate), deref(in.EndDate)
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "Debes enviar start_date y end_date")
		return
	}
	if end < start {
		writeError(w, http.StatusBadRequest, "La hora de fin debe ser posterior a la de inicio")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if in.CalendarID != nil {
		if _, ok := s.calendars[*in.CalendarID]; !ok {
			writeError(w, http.StatusNotFound, "El calendario no existe o no pertenece al usuario")
			return
		}
	}
	rec := eventRecord{
		ID:          s.allocID(),
		CalendarID:  in.CalendarID,
		Title:       title,
		StartDate:   start,
		EndDate:     end,
		AllDay:      in.AllDay != nil && *in.AllDay,
		Description: cleanOpt(in.Description),
		Color:       cleanOpt(in.Color),
	}
	s.events[rec.ID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	var in eventInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.events[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "Evento no encontrado")
		return
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			writeError(w, http.StatusBadRequest, "El título no puede estar vacío")
			return
		}
		rec.Title = title
	}
	if in.StartDate != nil {
		rec.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		rec.EndDate = *in.EndDate
	}
	if rec.EndDate < rec.StartDate {
		writeError(w, http.StatusBadRequest, "La hora de fin debe ser posterior a la de inicio")
		return
	}
	if in.AllDay != nil {
		rec.AllDay = *in.AllDay
	}
	if in.Description != nil {
		rec.Description = cleanOpt(in.Description)
	}
	if in.Color != nil {
		rec.Color = cleanOpt(in.Color)
	}
	if in.CalendarID != nil {
		if _, ok := s.calendars[*in.CalendarID]; !ok {
			writeError(w, http.StatusNotFound, "El calendario no existe o no pertenece al usuario")
			return
		}
		rec.CalendarID = in.CalendarID
	}
	s.events[rec.ID] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r, "id")
	if _, ok := s.events[id]; !ok {
		writeError(w, http.StatusNotFound, "Evento no encontrado")
		return
	}
	delete(s.events, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Evento eliminado"})
}

type calendarInput struct {
	Title *string `json:"title"`
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (in calendarInput) title() string {
	t := strings.TrimSpace(deref(in.Title))
	if t == "" {
		t = strings.TrimSpace(deref(in.Name))
	}
	return t
}

func (s *Server) listCalendars(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]calendarRecord, 0, len(s.calendars))
	for _, c := range s.calendars {
		out = append(out, c)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createCalendar(w http.ResponseWriter, r *http.Request) {
	var in calendarInput
	if !decodeBody(w, r, &in) {
		return
	}
	title := in.title()
	if title == "" {
		writeError(w, http.StatusBadRequest, "El nombre es requerido")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec := calendarRecord{ID: s.allocID(), Title: title, Color: cleanOpt(in.Color)}
	s.calendars[rec.ID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateCalendar(w http.ResponseWriter, r *http.Request) {
	var in calendarInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.calendars[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "Calendario no encontrado")
		return
	}
	if title := in.title(); title != "" {
		rec.Title = title
	}
	if in.Color != nil {
		rec.Color = cleanOpt(in.Color)
	}
	s.calendars[rec.ID] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteCalendar(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r, "id")
	if _, ok := s.calendars[id]; !ok {
		writeError(w, http.StatusNotFound, "Calendario no encontrado")
		return
	}
	delete(s.calendars, id)
	for eid, e := range s.events {
		if e.CalendarID != nil && *e.CalendarID == id {
			delete(s.events, eid)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Calendario eliminado"})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// cleanOpt trims and nils out empty optional strings.
func cleanOpt(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
