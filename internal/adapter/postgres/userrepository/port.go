// package userrepository contains the PostgreSQL implementation of the user
// port
package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

var _ secondary.UserPort = (*userRepo)(nil)

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
	}
}

func (u *userRepo) Create(ctx context.Context, user *domain.Users) error {
	query := `
		INSERT INTO users (id, user_name, password_hash, email, auth_provider, google_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := u.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.UserName,
		user.PasswordHash,
		user.Email,
		user.AuthProvider,
		user.GoogleID,
	)
	if err != nil {
		u.logger.Error("Failed to create user", "userName", user.UserName, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (u *userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	query := `
		SELECT id, user_name, password_hash, email, auth_provider, google_id
		FROM users
		WHERE google_id = $1
	`

	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, googleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}

	return &user, nil
}

func (u *userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	query := `
		SELECT id, user_name, password_hash, email, auth_provider, google_id
		FROM users
		WHERE user_name = $1
	`

	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, userName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}

	return &user, nil
}
