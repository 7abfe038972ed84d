package phone

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "phone:validation:"

// CachedValidator is a read-through Redis cache in front of another
// Validator. Only successful validations are cached; a number that failed
// validation is retried on the next request.
type CachedValidator struct {
	next  Validator
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedValidator(next Validator, client *redis.Client, ttl time.Duration) *CachedValidator {
	return &CachedValidator{next: next, redis: client, ttl: ttl}
}

func (c *CachedValidator) Validate(ctx context.Context, number string) (Validation, error) {
	key := cacheKeyPrefix + number

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var v Validation
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
	}

	v, err := c.next.Validate(ctx, number)
	if err != nil {
		return Validation{}, err
	}

	// Best effort: a cache write failure must not fail the validation.
	if data, err := json.Marshal(v); err == nil {
		c.redis.Set(ctx, key, data, c.ttl)
	}

	return v, nil
}
