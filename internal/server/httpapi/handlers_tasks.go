package httpapi

import (
	"net/http"
	"strconv"

	"taskkeeper/internal/common"
	"taskkeeper/internal/server/tasks"
)

// listQueryFromRequest parses pagination parameters, falling back to the
// documented defaults: page=0, size=5, sort=title, order=asc.
func listQueryFromRequest(r *http.Request) (tasks.ListQuery, error) {
	q := tasks.DefaultListQuery()
	params := r.URL.Query()

	if v := params.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return q, common.FieldErrors{}.Add("page", "must be an integer")
		}
		q.Page = page
	}
	if v := params.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return q, common.FieldErrors{}.Add("size", "must be an integer")
		}
		q.Size = size
	}
	if v := params.Get("sort"); v != "" {
		q.Sort = v
	}
	if v := params.Get("order"); v != "" {
		q.Order = v
	}

	return q, nil
}

// ownerID returns the identity bound by the auth middleware. A missing
// binding means the handler was wired without requireAuth, so treat it
// as unauthorized rather than guessing.
func (s *Server) ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrorUnauthorized)
		return "", false
	}
	return userID, true
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	q, err := listQueryFromRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, err := s.tasks.List(r.Context(), owner, q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, page)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	task, err := s.tasks.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, task)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	// CreateInput has no owner field: any userId in the body is dropped
	// here and the verified identity wins.
	var in tasks.CreateInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	task, err := s.tasks.Create(r.Context(), owner, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	var patch tasks.Patch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	task, err := s.tasks.Update(r.Context(), owner, r.PathValue("id"), patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerID(w, r)
	if !ok {
		return
	}

	task, err := s.tasks.Delete(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, task)
}
