// Package repomanager builds repositories over a shared database handle and
// owns schema migration. Repositories are created per call against a DBTX,
// so services can hand them either the pooled *sql.DB or a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/akels/taskdeck/internal/dbx"
	"github.com/akels/taskdeck/internal/server/repositories/tasks"
	"github.com/akels/taskdeck/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
