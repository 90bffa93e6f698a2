package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/akels/taskdeck/internal/common"
	"github.com/akels/taskdeck/internal/server/auth"
	"github.com/akels/taskdeck/internal/server/models"
	"github.com/akels/taskdeck/internal/server/services"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 8

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// userResponse is the outward account representation. It has no field for
// the credential hash at all, so it cannot leak one.
type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, fmt.Errorf("%w: name must not be empty", common.ErrorValidation))
		return
	}
	if !validEmail(req.Email) {
		writeError(w, fmt.Errorf("%w: email must be a valid address", common.ErrorValidation))
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength))
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.logger.Warn(r.Context(), "registration failed", "error", err.Error())
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Uniform on purpose: nothing in the log or response says which
		// credential was wrong.
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	user, err := s.users.CurrentUser(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeError(w, fmt.Errorf("%w: name must not be empty", common.ErrorValidation))
		return
	}
	if req.Email != nil && !validEmail(*req.Email) {
		writeError(w, fmt.Errorf("%w: email must be a valid address", common.ErrorValidation))
		return
	}
	if req.Password != nil && len(*req.Password) < minPasswordLength {
		writeError(w, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength))
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), identity.UserID, services.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	if err := s.users.DeleteAccount(r.Context(), identity.UserID); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "account deleted", "user_id", identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}
