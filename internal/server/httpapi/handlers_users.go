package httpapi

import (
	"net/http"

	"taskkeeper/internal/server/users"
)

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in users.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.Register(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)
	s.writeJSON(w, r, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set(AuthHeader, result.Token)
	s.writeJSON(w, r, http.StatusOK, map[string]string{"user": result.UserID})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	result, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if result == nil {
		result = []*users.User{}
	}

	s.writeJSON(w, r, http.StatusOK, result)
}
