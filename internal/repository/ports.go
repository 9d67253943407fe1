package repository

import (
	"bucketlist/internal/db"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	FindPage(ctx context.Context, dest any, offset, limit int, query string, args ...any) error
	UpdateRecord(ctx context.Context, record any) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
	Transaction(ctx context.Context, fn func(tx db.Tx) error) error
}

//counterfeiter:generate -o fake -fake-name Tx bucketlist/internal/db.Tx
