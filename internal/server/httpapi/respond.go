package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskkeeper/internal/common"
)

// errorResponse is the wire shape of every failure. It carries the error
// kind and a human message only; internal detail never leaves the server.
type errorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Fields  []common.FieldError `json:"fields,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(r.Context(), "error encoding response", "err", err.Error())
	}
}

// writeError maps service errors onto HTTP statuses and a uniform body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs common.FieldErrors

	switch {
	case errors.Is(err, common.ErrTokenExpired):
		s.writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "token expired"})
	case errors.Is(err, common.ErrInvalidToken):
		s.writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "invalid token"})
	case errors.Is(err, common.ErrorUnauthorized):
		s.writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "access denied"})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not_found", Message: "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "already_exists", Message: "email is already registered"})
	case errors.Is(err, common.ErrorInvalidPageSize):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid_page_size", Message: "size must be a positive integer"})
	case errors.Is(err, common.ErrorInvalidSortField):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid_sort_field", Message: "unknown sort field"})
	case errors.As(err, &fieldErrs):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "validation", Message: "invalid input", Fields: fieldErrs})
	case errors.Is(err, common.ErrorValidation):
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "validation", Message: "invalid input"})
	default:
		s.logger.Error(r.Context(), "request failed", "err", err.Error())
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal", Message: "internal error"})
	}
}

// decodeJSON reads the request body into v; a malformed body is a
// validation failure at the boundary.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.FieldErrors{}.Add("body", "malformed JSON")
	}
	return nil
}
