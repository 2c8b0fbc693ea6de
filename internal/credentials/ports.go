package credentials

import (
	"context"

	"goalapp/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserBySessionToken(ctx context.Context, token string) (repository.User, error)
	UsernameExists(ctx context.Context, username, excludeID string) (bool, error)
	SessionTokenExists(ctx context.Context, token, excludeID string) (bool, error)
	UpdateSessionToken(ctx context.Context, userID, token string) error
}

//counterfeiter:generate -o fake -fake-name TokenGenerator . TokenGenerator
type TokenGenerator interface {
	Generate() (string, error)
}
