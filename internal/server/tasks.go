package server

import (
	"net/http"
	"sort"
	"strings"
)

type taskInput struct {
	Title   *string `json:"title"`
	Status  *bool   `json:"status"`
	Date    *string `json:"date"`
	Color   *string `json:"color"`
	GroupID *int    `json:"task_group_id"`
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]taskRecord, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createTaskInGroup(w http.ResponseWriter, r *http.Request) {
	var in taskInput
	if !decodeBody(w, r, &in) {
		return
	}
	title := strings.TrimSpace(deref(in.Title))
	if title == "" {
		writeError(w, http.StatusBadRequest, "Falta el campo 'title'")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	group := pathID(r, "group")
	if _, ok := s.groups[group]; !ok {
		writeError(w, http.StatusNotFound, "El grupo no existe o no pertenece al usuario")
		return
	}
	rec := taskRecord{
		ID:      s.allocID(),
		GroupID: &group,
		Title:   title,
		Status:  in.Status != nil && *in.Status,
		Date:    cleanOpt(in.Date),
		Color:   cleanOpt(in.Color),
	}
	s.tasks[rec.ID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	var in taskInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.tasks[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "Tarea no encontrada")
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
	if in.Status != nil {
		rec.Status = *in.Status
	}
	if in.Date != nil {
		rec.Date = cleanOpt(in.Date)
	}
	if in.Color != nil {
		rec.Color = cleanOpt(in.Color)
	}
	if in.GroupID != nil {
		// Tasks stay bound to the group they were created in; a move is
		// create-in-new-group plus delete, exactly like production.
		writeError(w, http.StatusMethodNotAllowed, "No se puede cambiar el grupo de una tarea")
		return
	}
	s.tasks[rec.ID] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) toggleTask(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status bool `json:"status"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.tasks[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "Tarea no encontrada")
		return
	}
	rec.Status = in.Status
	s.tasks[rec.ID] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r, "id")
	if _, ok := s.tasks[id]; !ok {
		writeError(w, http.StatusNotFound, "Tarea no encontrada")
		return
	}
	delete(s.tasks, id)
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Tarea eliminada correctamente"})
}

type groupInput struct {
	Title *string `json:"title"`
	Color *string `json:"color"`
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]groupRecord, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, g)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var in groupInput
	if !decodeBody(w, r, &in) {
		return
	}
	title := strings.TrimSpace(deref(in.Title))
	if title == "" {
		writeError(w, http.StatusBadRequest, "El título es requerido")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec := groupRecord{ID: s.allocID(), Title: title, Color: cleanOpt(in.Color)}
	s.groups[rec.ID] = rec
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateGroup(w http.ResponseWriter, r *http.Request) {
	var in groupInput
	if !decodeBody(w, r, &in) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.groups[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "Grupo no encontrado")
		return
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		rec.Title = strings.TrimSpace(*in.Title)
	}
	if in.Color != nil {
		rec.Color = cleanOpt(in.Color)
	}
	s.groups[rec.ID] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteGroup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r, "id")
	if _, ok := s.groups[id]; !ok {
		writeError(w, http.StatusNotFound, "Grupo no encontrado")
		return
	}
	delete(s.groups, id)
	for tid, t := range s.tasks {
		if t.GroupID != nil && *t.GroupID == id {
			delete(s.tasks, tid)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Grupo eliminado"})
}
