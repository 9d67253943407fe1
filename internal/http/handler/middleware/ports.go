package middleware

import (
	"bucketlist/internal/core"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authorizer . Authorizer
type Authorizer interface {
	VerifyToken(ctx context.Context, token string) (core.Identity, error)
	OwnedBucketlist(ctx context.Context, bucketlistID uint, userID string) (core.BucketlistRecord, error)
	ItemInBucketlist(ctx context.Context, itemID, bucketlistID uint) (core.ItemRecord, error)
}
