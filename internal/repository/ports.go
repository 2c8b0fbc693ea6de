package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	Exists(ctx context.Context, model any, column string, value any, excludeID string) (bool, error)
	UpdateByID(ctx context.Context, model any, id string, values map[string]any) error
}
