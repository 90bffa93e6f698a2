package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akels/taskdeck/internal/common"
	"github.com/akels/taskdeck/internal/server/auth"
)

// requestIDHeader carries the per-request correlation id in responses.
const requestIDHeader = "X-Request-Id"

// authedHandler is a handler that additionally receives the verified
// identity. Threading it as an argument keeps the auth result out of the
// request context, so a handler cannot run without one.
type authedHandler func(w http.ResponseWriter, r *http.Request, identity auth.Identity)

// requireAuth verifies the bearer token and invokes next with the identity
// it carries. Missing header, wrong scheme, and any verification failure all
// produce the same uniform unauthorized response.
func (s *Server) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeader)
		if header == "" {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || parts[0] != common.BearerPrefix {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		identity, err := auth.VerifyToken(parts[1], s.jwtSecret)
		if err != nil {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		next(w, r, *identity)
	}
}

// statusRecorder wraps http.ResponseWriter to capture the response status.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", rec.Header().Get(requestIDHeader),
		)
	})
}
