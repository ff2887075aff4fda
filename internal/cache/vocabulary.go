package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"groomer-directory/internal/models"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	locationsKey       = "directory:locations"
	specializationsKey = "directory:specializations"
)

// Client is the subset of the redis client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store provides the location and specialization vocabularies.
type Store interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListSpecializations(ctx context.Context) ([]models.Specialization, error)
}

// Vocabulary is a read-through redis cache in front of a Store. Redis
// failures fall back to the store.
type Vocabulary struct {
	next   Store
	client Client
	ttl    time.Duration
}

// NewVocabulary creates a new vocabulary cache
func NewVocabulary(next Store, client Client, ttl time.Duration) *Vocabulary {
	return &Vocabulary{next: next, client: client, ttl: ttl}
}

// ListLocations returns the cached locations, loading them on a miss.
func (v *Vocabulary) ListLocations(ctx context.Context) ([]models.Location, error) {
	return readThrough(ctx, v, locationsKey, v.next.ListLocations)
}

// ListSpecializations returns the cached specializations, loading them on a miss.
func (v *Vocabulary) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	return readThrough(ctx, v, specializationsKey, v.next.ListSpecializations)
}

// Invalidate drops both cached lists.
func (v *Vocabulary) Invalidate(ctx context.Context) error {
	return v.client.Del(ctx, locationsKey, specializationsKey).Err()
}

func readThrough[T any](ctx context.Context, v *Vocabulary, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	raw, err := v.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []T
		jsonErr := json.Unmarshal(raw, &items)
		if jsonErr == nil {
			return items, nil
		}
		log.Warn().Err(jsonErr).Str("key", key).Msg("discarding unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return items, nil
	}
	if err := v.client.Set(ctx, key, payload, v.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return items, nil
}
