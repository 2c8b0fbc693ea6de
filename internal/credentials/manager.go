package credentials

import (
	"context"
	"errors"
	"fmt"

	"goalapp/internal/repository"

	"github.com/jellydator/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultPasswordMinLength = 6
	DefaultMaxTokenAttempts  = 10
)

type Config struct {
	PasswordMinLength int
	HashCost          int
	MaxTokenAttempts  int
}

func (c Config) withDefaults() Config {
	if c.PasswordMinLength <= 0 {
		c.PasswordMinLength = DefaultPasswordMinLength
	}
	if c.HashCost < bcrypt.MinCost || c.HashCost > bcrypt.MaxCost {
		c.HashCost = bcrypt.DefaultCost
	}
	if c.MaxTokenAttempts <= 0 {
		c.MaxTokenAttempts = DefaultMaxTokenAttempts
	}
	return c
}

// Manager stores credentials, verifies passwords and issues session tokens.
type Manager struct {
	logs   *zap.SugaredLogger
	repo   UserRepository
	tokens TokenGenerator
	cfg    Config

	// compared against when the username is unknown so that lookup misses cost a full hash
	dummyVerifier []byte
}

func NewManager(logger *zap.SugaredLogger, repo UserRepository, tokens TokenGenerator, cfg Config) (*Manager, error) {
	cfg = cfg.withDefaults()

	dummy, err := bcrypt.GenerateFromPassword([]byte("goalapp-timing-equaliser"), cfg.HashCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy verifier: %w", err)
	}

	return &Manager{
		logs:          logger,
		repo:          repo,
		tokens:        tokens,
		cfg:           cfg,
		dummyVerifier: dummy,
	}, nil
}

// NewUser builds an unsaved user from a construction request.
func (m *Manager) NewUser(username, password string) *User {
	user := &User{
		Username: username,
		hashCost: m.cfg.HashCost,
	}
	user.SetPassword(password)
	return user
}

// CreateUser runs the save pipeline for a new user: token assignment, validation, insert.
// On a *ValidationError the unsaved user is returned too, so the submitted values can be shown again.
func (m *Manager) CreateUser(ctx context.Context, username, password string) (*User, error) {
	user := m.NewUser(username, password)

	for attempt := 1; ; attempt++ {
		if err := m.EnsureSessionToken(ctx, user); err != nil {
			return nil, err
		}

		if err := m.Validate(ctx, user); err != nil {
			return user, err
		}

		row, err := m.repo.CreateUser(ctx, toRecord(user))
		if err == nil {
			user.ID = row.ID
			user.CreatedAt = row.CreatedAt
			user.UpdatedAt = row.UpdatedAt
			m.logs.Infow("user created", "user_id", user.ID, "username", user.Username)
			return user, nil
		}

		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return user, &ValidationError{Errors: validation.Errors{"username": errTaken}}
		case errors.Is(err, repository.ErrSessionTokenTaken) && attempt < m.cfg.MaxTokenAttempts:
			m.logs.Warnw("session token taken on insert, regenerating", "attempt", attempt)
			user.SessionToken = ""
			continue
		}

		return nil, &PersistenceError{Op: "create user", Err: err}
	}
}

// FindByCredentials returns the user whose username matches exactly and whose verifier accepts
// password. Every other outcome that is not a storage failure is ErrNotFound.
func (m *Manager) FindByCredentials(ctx context.Context, username, password string) (*User, error) {
	row, err := m.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(m.dummyVerifier, []byte(password))
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "find user by username", Err: err}
	}

	user := m.fromRecord(row)
	if !user.VerifyPassword(password) {
		return nil, ErrNotFound
	}

	return user, nil
}

// FindBySessionToken resolves the user currently holding token.
func (m *Manager) FindBySessionToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	row, err := m.repo.GetUserBySessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "find user by session token", Err: err}
	}

	return m.fromRecord(row), nil
}

// GenerateUniqueSessionToken draws tokens until one is not held by any stored user. The check
// is advisory; the unique constraint on session_token decides at write time.
func (m *Manager) GenerateUniqueSessionToken(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= m.cfg.MaxTokenAttempts; attempt++ {
		token, err := m.tokens.Generate()
		if err != nil {
			return "", fmt.Errorf("generate session token: %w", err)
		}

		taken, err := m.repo.SessionTokenExists(ctx, token, "")
		if err != nil {
			return "", &PersistenceError{Op: "check session token", Err: err}
		}

		if !taken {
			return token, nil
		}

		m.logs.Warnw("session token collision, regenerating", "attempt", attempt)
	}

	return "", &PersistenceError{Op: "generate session token", Err: ErrTokenAttemptsExhausted}
}

// EnsureSessionToken assigns a fresh token to a user that has none.
func (m *Manager) EnsureSessionToken(ctx context.Context, user *User) error {
	if user.SessionToken != "" {
		return nil
	}

	token, err := m.GenerateUniqueSessionToken(ctx)
	if err != nil {
		return err
	}

	user.SessionToken = token
	return nil
}

// ResetSessionToken rotates the user's token and persists it right away. On failure the user
// keeps its previous token.
func (m *Manager) ResetSessionToken(ctx context.Context, user *User) (string, error) {
	token, err := m.GenerateUniqueSessionToken(ctx)
	if err != nil {
		return "", err
	}

	if err := m.repo.UpdateSessionToken(ctx, user.ID, token); err != nil {
		return "", &PersistenceError{Op: "reset session token", Err: err}
	}

	user.SessionToken = token
	m.logs.Infow("session token reset", "user_id", user.ID)
	return token, nil
}

func (m *Manager) fromRecord(row repository.User) *User {
	return &User{
		ID:               row.ID,
		Username:         row.Username,
		PasswordVerifier: row.PasswordVerifier,
		SessionToken:     row.SessionToken,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		hashCost:         m.cfg.HashCost,
	}
}

func toRecord(user *User) repository.User {
	return repository.User{
		ID:               user.ID,
		Username:         user.Username,
		PasswordVerifier: user.PasswordVerifier,
		SessionToken:     user.SessionToken,
	}
}
