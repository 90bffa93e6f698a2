package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/akels/taskdeck/internal/common"
	"github.com/akels/taskdeck/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func taskColumns() []string {
	return []string{"id", "title", "description", "completed", "user_id", "created_at", "updated_at"}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+tasks\s*\(title,\s*description,\s*completed,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now)
	mock.ExpectQuery(q).
		WithArgs("buy milk", nil, false, int64(7)).
		WillReturnRows(rows)

	task := &models.Task{Title: "buy milk", UserID: 7}
	got, err := repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 1 || got.UserID != 7 {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestGetOwned_ScopesByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// Ownership is enforced in the query itself: both id and user_id are
	// bound parameters.
	q := `(?s)^SELECT\s+id,\s*title,\s*description,\s*completed,\s*user_id,\s*created_at,\s*updated_at\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(taskColumns()).
		AddRow(int64(5), "buy milk", nil, false, int64(7), now, now)
	mock.ExpectQuery(q).WithArgs(int64(5), int64(7)).WillReturnRows(rows)

	got, err := repo.GetOwned(context.Background(), 5, 7)
	if err != nil {
		t.Fatalf("GetOwned error: %v", err)
	}
	if got.ID != 5 || got.UserID != 7 {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestGetOwned_ForeignOrMissingIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*title`).
		WithArgs(int64(5), int64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOwned(context.Background(), 5, 8)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestListByOwner_ReturnsEmptySliceNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*title.*FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	got, err := repo.ListByOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestListByOwner_ScansRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	desc := "with description"
	rows := sqlmock.NewRows(taskColumns()).
		AddRow(int64(1), "first", nil, false, int64(7), now, now).
		AddRow(int64(2), "second", desc, true, int64(7), now, now)
	mock.ExpectQuery(`SELECT\s+id,\s*title.*FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[1].Description == nil || *got[1].Description != desc {
		t.Fatalf("unexpected description: %+v", got[1])
	}
}

func TestUpdateOwned_NotFoundWhenForeign(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+tasks\s+SET\s+title`).
		WithArgs("new title", nil, true, int64(5), int64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateOwned(context.Background(), &models.Task{ID: 5, UserID: 8, Title: "new title", Completed: true})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteOwned_NotFoundWhenNoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs(int64(5), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteOwned(context.Background(), 5, 8)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteAllForOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteAllForOwner(context.Background(), 7); err != nil {
		t.Fatalf("DeleteAllForOwner error: %v", err)
	}
}
