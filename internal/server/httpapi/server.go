// Package httpapi exposes the service over HTTP: a JSON route table built
// at startup, token-checking middleware in front of protected handlers,
// and uniform error mapping at the boundary.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"taskkeeper/internal/logging"
	"taskkeeper/internal/server/auth"
	"taskkeeper/internal/server/tasks"
	"taskkeeper/internal/server/users"
)

// UserService defines the auth operations consumed by the HTTP layer.
type UserService interface {
	Register(ctx context.Context, in users.RegisterInput) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.LoginResult, error)
	List(ctx context.Context) ([]*users.User, error)
}

// TaskService defines the task operations consumed by the HTTP layer.
type TaskService interface {
	List(ctx context.Context, ownerID string, q tasks.ListQuery) (*tasks.Page, error)
	Get(ctx context.Context, ownerID, id string) (*tasks.Task, error)
	Create(ctx context.Context, ownerID string, in tasks.CreateInput) (*tasks.Task, error)
	Update(ctx context.Context, ownerID, id string, patch tasks.Patch) (*tasks.Task, error)
	Delete(ctx context.Context, ownerID, id string) (*tasks.Task, error)
}

// TokenVerifier checks inbound identity tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Payload, error)
}

// Server is the HTTP front of the service.
type Server struct {
	addr   string
	logger logging.Logger
	users  UserService
	tasks  TaskService
	tokens TokenVerifier
}

func NewServer(addr string, l logging.Logger, us UserService, ts TaskService, tokens TokenVerifier) *Server {
	return &Server{
		addr:   addr,
		logger: l.With("module", "http_server"),
		users:  us,
		tasks:  ts,
		tokens: tokens,
	}
}

// Handler builds the route table. Protected routes sit behind requireAuth,
// so no handler runs without a verified identity.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handlePing)

	mux.HandleFunc("POST /users/register", s.handleRegister)
	mux.HandleFunc("POST /users/login", s.handleLogin)
	mux.Handle("GET /users", s.requireAuth(http.HandlerFunc(s.handleListUsers)))

	mux.Handle("GET /tasks", s.requireAuth(http.HandlerFunc(s.handleListTasks)))
	mux.Handle("POST /tasks", s.requireAuth(http.HandlerFunc(s.handleCreateTask)))
	mux.Handle("GET /tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleGetTask)))
	mux.Handle("PUT /tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleUpdateTask)))
	mux.Handle("DELETE /tasks/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteTask)))

	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
