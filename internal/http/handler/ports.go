package handler

import (
	"context"
	"net/http"

	"goalapp/internal/credentials"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CredentialService . CredentialService
type CredentialService interface {
	CreateUser(ctx context.Context, username, password string) (*credentials.User, error)
	FindByCredentials(ctx context.Context, username, password string) (*credentials.User, error)
	FindBySessionToken(ctx context.Context, token string) (*credentials.User, error)
	ResetSessionToken(ctx context.Context, user *credentials.User) (string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
