package models

import "time"

// Task is a to-do item. UserID references the owning account and is
// immutable after creation.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
