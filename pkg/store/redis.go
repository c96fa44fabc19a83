package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "egraph:graph:"
	redisIndexKey  = "egraph:graphs"
)

// RedisStore is a Redis-backed store for shared deployments. Records are
// stored as JSON strings, with a set holding the names for listing.
type RedisStore struct {
	client *redis.Client
}

// RedisConfig holds connection settings for the Redis store.
type RedisConfig struct {
	Addr     string // host:port, e.g. "localhost:6379"
	Password string // empty for no auth
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Save upserts a record under name.
func (s *RedisStore) Save(ctx context.Context, name, notation string) (Record, error) {
	var prev *Record
	if existing, err := s.Get(ctx, name); err == nil {
		prev = &existing
	} else if !errors.Is(err, ErrNotFound) {
		return Record{}, err
	}
	rec := updated(prev, name, notation)

	data, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("marshal record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+name, data, 0)
	pipe.SAdd(ctx, redisIndexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return Record{}, fmt.Errorf("save record: %w", err)
	}
	return rec, nil
}

// Get returns the record stored under name.
func (s *RedisStore) Get(ctx context.Context, name string) (Record, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// List returns all records sorted by name.
func (s *RedisStore) List(ctx context.Context) ([]Record, error) {
	names, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	var recs []Record
	for _, name := range names {
		rec, err := s.Get(ctx, name)
		if errors.Is(err, ErrNotFound) {
			continue // index out of sync, skip
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	return recs, nil
}

// Delete removes the record stored under name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, redisKeyPrefix+name)
	pipe.SRem(ctx, redisIndexKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}
