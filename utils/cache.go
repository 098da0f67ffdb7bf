// File: utils/cache.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RoleCachePrefix namespaces cached account roles.
const RoleCachePrefix = "role:"

// noRole marks an email known to have no role (or no account), so misses are cached too.
const noRole = "-"

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (db %d): %w", db, err)
	}
	return client, nil
}

// RoleCache caches account roles for the admin gate.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache wraps client; entries expire after ttl.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{client: client, ttl: ttl}
}

// Get returns the cached role for email and whether an entry was present.
func (c *RoleCache) Get(ctx context.Context, email string) (string, bool, error) {
	role, err := c.client.Get(ctx, RoleCachePrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if role == noRole {
		role = ""
	}
	return role, true, nil
}

// Set stores role for email.
func (c *RoleCache) Set(ctx context.Context, email, role string) error {
	if role == "" {
		role = noRole
	}
	return c.client.Set(ctx, RoleCachePrefix+email, role, c.ttl).Err()
}

// Invalidate drops the cached role for email.
func (c *RoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, RoleCachePrefix+email).Err()
}
