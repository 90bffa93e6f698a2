package services

import (
	"context"
	"database/sql"

	"github.com/akels/taskdeck/internal/server/models"
	"github.com/akels/taskdeck/internal/server/repositories/repomanager"
)

// TaskUpdate is a partial task change; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskService implements owner-scoped task CRUD. Every lookup is bound to
// the authenticated identity, so a task owned by someone else produces the
// same common.ErrorNotFound as a task that does not exist.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create stores a new task owned by userID. The owner must exist at creation
// time; a stale identity (account deleted while its token was still live)
// propagates the user repo's not-found.
func (s *TaskService) Create(ctx context.Context, userID int64, title string, description *string, completed bool) (*models.Task, error) {
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Tasks(s.db)
	return repo.Create(ctx, &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
}

// ListMine returns all tasks owned by userID.
func (s *TaskService) ListMine(ctx context.Context, userID int64) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.ListByOwner(ctx, userID)
}

// GetMine returns the task only if it belongs to userID.
func (s *TaskService) GetMine(ctx context.Context, id, userID int64) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.GetOwned(ctx, id, userID)
}

// UpdateMine applies a partial update to a task owned by userID. The guard
// and the write are a single owner-scoped query, so a task deleted between
// the read and the write still yields not-found.
func (s *TaskService) UpdateMine(ctx context.Context, id, userID int64, upd TaskUpdate) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task, err := repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = upd.Description
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}

	return repo.UpdateOwned(ctx, task)
}

// DeleteMine removes a task owned by userID.
func (s *TaskService) DeleteMine(ctx context.Context, id, userID int64) error {
	repo := s.repomanager.Tasks(s.db)
	return repo.DeleteOwned(ctx, id, userID)
}
