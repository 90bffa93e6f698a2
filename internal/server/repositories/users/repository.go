// Package users persists account records. GetByEmailWithHash is the only
// read that returns the credential hash; every other lookup leaves it empty.
package users

import (
	"context"

	"github.com/akels/taskdeck/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmailWithHash(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
