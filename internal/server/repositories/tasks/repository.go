// Package tasks persists to-do items. Every single-row operation is scoped
// by owner id in the query itself, so a task that exists but belongs to
// someone else is indistinguishable from one that does not exist.
package tasks

import (
	"context"

	"github.com/akels/taskdeck/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.Task, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Task, error)
	UpdateOwned(ctx context.Context, task *models.Task) (*models.Task, error)
	DeleteOwned(ctx context.Context, id, userID int64) error
	DeleteAllForOwner(ctx context.Context, userID int64) error
}
