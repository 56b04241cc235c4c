package httpapi

import (
	"context"
	"net/http"

	"taskkeeper/internal/common"
)

// AuthHeader is the request header carrying the signed identity token.
const AuthHeader = "auth-token"

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth extracts the token from the auth header, verifies it, and
// binds the resolved user id into the request context. A missing, invalid,
// or expired token rejects the request before the handler runs.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(AuthHeader)
		if token == "" {
			s.writeError(w, r, common.ErrorUnauthorized)
			return
		}

		payload, err := s.tokens.Verify(token)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, payload.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the identity bound by requireAuth for this
// request, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
