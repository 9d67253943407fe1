package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked:"

// RevocationStore keeps revoked tokens in redis until they would have expired
// anyway, so the set never grows past the live-token horizon.
type RevocationStore struct {
	rdb *redis.Client
}

func NewRevocationStore(rdb *redis.Client) *RevocationStore {
	return &RevocationStore{
		rdb: rdb,
	}
}

func (s *RevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}

	err := s.rdb.Set(ctx, revokedKeyPrefix+token, 1, ttl).Err()
	if err != nil {
		return fmt.Errorf("set revocation entry: %w", err)
	}

	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.rdb.Get(ctx, revokedKeyPrefix+token).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get revocation entry: %w", err)
	}

	return true, nil
}
