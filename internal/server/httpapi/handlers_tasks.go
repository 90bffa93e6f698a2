package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/akels/taskdeck/internal/common"
	"github.com/akels/taskdeck/internal/server/auth"
	"github.com/akels/taskdeck/internal/server/models"
	"github.com/akels/taskdeck/internal/server/services"
)

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type taskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// taskIDFromPath parses the {id} path segment. A non-numeric id maps to the
// same not-found as a missing row, so probing with garbage learns nothing.
func taskIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorNotFound
	}
	return id, nil
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeError(w, fmt.Errorf("%w: title must not be empty", common.ErrorValidation))
		return
	}

	task, err := s.tasks.Create(r.Context(), identity.UserID, req.Title, req.Description, req.Completed)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	tasks, err := s.tasks.ListMine(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	task, err := s.tasks.GetMine(r.Context(), id, identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		writeError(w, fmt.Errorf("%w: title must not be empty", common.ErrorValidation))
		return
	}

	task, err := s.tasks.UpdateMine(r.Context(), id, identity.UserID, services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request, identity auth.Identity) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.tasks.DeleteMine(r.Context(), id, identity.UserID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
