// Package services contains server-side business logic. This file implements
// UserService: registration, credential validation, token issuance, and
// self-service profile operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/akels/taskdeck/internal/common"
	"github.com/akels/taskdeck/internal/dbx"
	"github.com/akels/taskdeck/internal/server/auth"
	"github.com/akels/taskdeck/internal/server/config"
	"github.com/akels/taskdeck/internal/server/models"
	"github.com/akels/taskdeck/internal/server/repositories/repomanager"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint
// violations (duplicate email on users.email).
const uniqueViolation = "23505"

// ProfileUpdate is a partial profile change; nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// UserService provides authentication-related operations:
//   - Register: create accounts (hashing the password first)
//   - Login: verify credentials and mint an access token
//   - CurrentUser / UpdateProfile / DeleteAccount: self-scoped account ops
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a new account. The plaintext password is hashed before it
// reaches the repository. A duplicate email surfaces as common.ErrorConflict:
// unlike login failures, registration conflicts concern the registrant's own
// input and are safe to disclose.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	// Return a hash-free representation.
	user.PasswordHash = ""
	return user, nil
}

// validateCredentials looks the account up by email (privileged lookup that
// includes the hash) and verifies the password. "No such email" and "wrong
// password" collapse into the same uniform unauthorized error so callers
// cannot enumerate accounts.
func (s *UserService) validateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmailWithHash(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// Login validates the credentials and, on success, returns a signed access
// token carrying the account id and email.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.validateCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// CurrentUser returns the full account behind a verified identity. The token
// carries only the minimal projection, so profile retrieval is a separate
// read; an account deleted after issuance yields common.ErrorNotFound.
func (s *UserService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's own account. A new
// password is hashed here; an email collision maps to common.ErrorConflict.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Password != nil {
		hash, err := auth.HashPassword(*upd.Password, s.bcryptCost)
		if err != nil {
			return nil, common.ErrorInternal
		}
		user.PasswordHash = hash
	}

	updated, err := repo.Update(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, err
	}

	return updated, nil
}

// DeleteAccount removes the caller's tasks and account in one transaction,
// mirroring the schema's ON DELETE CASCADE for callers of the service layer.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Tasks(tx).DeleteAllForOwner(ctx, userID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, userID)
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
