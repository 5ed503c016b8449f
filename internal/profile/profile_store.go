package profile

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const nameKeyPrefix = "loggedInUser:"

// NameStore reads the display name persisted by the login flow. This core
// never writes to it.
type NameStore interface {
	DisplayName(ctx context.Context, sessionID string) (string, error)
}

type redisNameStore struct {
	client *redis.Client
}

func NewRedisNameStore(client *redis.Client) NameStore {
	return &redisNameStore{client: client}
}

func (s *redisNameStore) DisplayName(ctx context.Context, sessionID string) (string, error) {
	val, err := s.client.Get(ctx, nameKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		// no name on record is not an error, the greeting just stays generic
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
