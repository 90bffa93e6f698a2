// Package httpapi exposes the REST surface of the server: registration,
// login, profile, and owner-scoped task CRUD. It maps the service error
// taxonomy onto HTTP status codes and never leaks finer detail than the
// category itself.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akels/taskdeck/internal/logging"
	"github.com/akels/taskdeck/internal/server/models"
	"github.com/akels/taskdeck/internal/server/services"
)

// UserProvider is the slice of UserService the handlers need.
type UserProvider interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd services.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

// TaskProvider is the slice of TaskService the handlers need.
type TaskProvider interface {
	Create(ctx context.Context, userID int64, title string, description *string, completed bool) (*models.Task, error)
	ListMine(ctx context.Context, userID int64) ([]*models.Task, error)
	GetMine(ctx context.Context, id, userID int64) (*models.Task, error)
	UpdateMine(ctx context.Context, id, userID int64, upd services.TaskUpdate) (*models.Task, error)
	DeleteMine(ctx context.Context, id, userID int64) error
}

type Server struct {
	address   string
	users     UserProvider
	tasks     TaskProvider
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us UserProvider, ts TaskProvider, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table wrapped in the request-id and logging
// middleware. Exposed separately from Run so tests can drive it with
// httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", s.handlePing)

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("PATCH /me", s.requireAuth(s.handleUpdateProfile))
	mux.HandleFunc("DELETE /me", s.requireAuth(s.handleDeleteAccount))

	mux.HandleFunc("POST /me/tasks", s.requireAuth(s.handleCreateTask))
	mux.HandleFunc("GET /me/tasks", s.requireAuth(s.handleListTasks))
	mux.HandleFunc("GET /me/tasks/{id}", s.requireAuth(s.handleGetTask))
	mux.HandleFunc("PATCH /me/tasks/{id}", s.requireAuth(s.handleUpdateTask))
	mux.HandleFunc("DELETE /me/tasks/{id}", s.requireAuth(s.handleDeleteTask))

	return s.withRequestID(s.withRequestLogging(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
