package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllOrdered(ctx context.Context, order string, entity any) error
	UpdateColumns(ctx context.Context, entity any, values map[string]any, query string, args ...any) error
	DeleteWhere(ctx context.Context, entity any, query string, args ...any) error
}
