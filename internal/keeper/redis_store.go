package keeper

import (
	"clarity/internal/keeper/interfaces"
	"clarity/internal/structures"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(conf structures.RedisConfig) interfaces.SnapshotStoreInterface {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:         conf.Addr,
			Password:     conf.Password,
			DB:           conf.DB,
			PoolSize:     4,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 10 * time.Second,
		}),
		key: conf.Key,
	}
}

func (r *RedisStore) Name() string {
	return fmt.Sprintf("redis %s/%s", r.client.Options().Addr, r.key)
}

func (r *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return data, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// NewSnapshotStore picks the backend named by persistence.driver.
func NewSnapshotStore(conf *structures.Config) (interfaces.SnapshotStoreInterface, error) {
	switch conf.Persistence.Driver {
	case "file":
		return NewFileStore(conf.Persistence.FilePath), nil
	case "redis":
		return NewRedisStore(conf.Persistence.Redis), nil
	}
	return nil, fmt.Errorf("unknown persistence driver %q", conf.Persistence.Driver)
}
