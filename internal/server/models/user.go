// Package models defines the database row types shared by repositories and
// services.
package models

import "time"

// User is an account record. PasswordHash is only populated by the
// privileged lookup used for credential checks; all other reads leave it
// empty and it must never cross the API boundary.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
