package handler

import (
	"bucketlist/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BucketService . BucketService
type BucketService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	RevokeToken(ctx context.Context, token string) error
	ListBucketlists(ctx context.Context, userID string, query core.ListQuery) ([]core.BucketlistRecord, error)
	CreateBucketlist(ctx context.Context, userID, name string) (core.BucketlistRecord, error)
	UpdateBucketlist(ctx context.Context, bucketlistID uint, name string) (core.BucketlistRecord, error)
	DeleteBucketlist(ctx context.Context, bucketlistID uint) error
	ListItems(ctx context.Context, bucketlistID uint) ([]core.ItemRecord, error)
	CreateItem(ctx context.Context, bucketlistID uint, name string) (core.ItemRecord, error)
	UpdateItem(ctx context.Context, itemID uint, name, done string) (core.ItemRecord, error)
	DeleteItem(ctx context.Context, itemID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
