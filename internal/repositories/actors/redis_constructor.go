package actors

import (
	"github.com/redis/go-redis/v9"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/uuid"
)

// NewRedis creates a new Redis-backed actor repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		TimeProvider:  RealTimeProvider{},
	})
}
