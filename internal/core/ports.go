package core

import (
	"bucketlist/internal/repository"
	tokenIssuer "bucketlist/pkg/jwt"
	"context"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateBucketlist(ctx context.Context, list repository.Bucketlist) (repository.Bucketlist, error)
	GetBucketlist(ctx context.Context, id uint) (repository.Bucketlist, error)
	GetUserBucketlists(ctx context.Context, userID, nameQuery string, offset, limit int) ([]repository.Bucketlist, error)
	UpdateBucketlist(ctx context.Context, list repository.Bucketlist) error
	DeleteBucketlist(ctx context.Context, id uint) error
	CreateItem(ctx context.Context, item repository.BucketlistItem) (repository.BucketlistItem, error)
	GetItem(ctx context.Context, id uint) (repository.BucketlistItem, error)
	GetBucketlistItems(ctx context.Context, bucketlistID uint) ([]repository.BucketlistItem, error)
	UpdateItem(ctx context.Context, item repository.BucketlistItem) error
	DeleteItem(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name RevocationList . RevocationList
type RevocationList interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
