package repository

import (
	"context"
	"errors"
	"fmt"

	"goalapp/internal/db"

	"github.com/google/uuid"
)

const (
	usernameConstraint     = "users_username_key"
	sessionTokenConstraint = "users_session_token_key"
)

var (
	ErrUserNotFound      error = errors.New("user not found")
	ErrUsernameTaken     error = errors.New("username already taken")
	ErrSessionTokenTaken error = errors.New("session token already taken")
)

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUser inserts the user under a freshly assigned id and returns the stored row.
func (r *UserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	user.ID = uuid.NewString()

	if err := r.db.Create(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", conflict(err))
	}

	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *UserRepository) GetUserBySessionToken(ctx context.Context, token string) (User, error) {
	return r.getUserBy(ctx, "session_token", token)
}

// UsernameExists reports whether another user than excludeID already holds username.
func (r *UserRepository) UsernameExists(ctx context.Context, username, excludeID string) (bool, error) {
	exists, err := r.db.Exists(ctx, &User{}, "username", username, excludeID)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

// SessionTokenExists reports whether another user than excludeID already holds token.
func (r *UserRepository) SessionTokenExists(ctx context.Context, token, excludeID string) (bool, error) {
	exists, err := r.db.Exists(ctx, &User{}, "session_token", token, excludeID)
	if err != nil {
		return false, fmt.Errorf("check session token: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) UpdateSessionToken(ctx context.Context, userID, token string) error {
	err := r.db.UpdateByID(ctx, &User{}, userID, map[string]any{"session_token": token})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update session token: %w", conflict(err))
	}

	return nil
}

func (r *UserRepository) getUserBy(ctx context.Context, column, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

// conflict maps a unique constraint violation onto the field-specific sentinel while keeping the
// original error in the chain.
func conflict(err error) error {
	var dupErr *db.DuplicateKeyError
	if !errors.As(err, &dupErr) {
		return err
	}

	switch dupErr.Constraint {
	case usernameConstraint:
		return fmt.Errorf("%w: %w", ErrUsernameTaken, err)
	case sessionTokenConstraint:
		return fmt.Errorf("%w: %w", ErrSessionTokenTaken, err)
	}
	return err
}
