// Package session implements the opaque session token store backed by Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/config"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "session:"

// Store maps opaque tokens to user ids with a TTL.
type Store struct {
	log    *zap.SugaredLogger
	client *redis.Client
	ttl    time.Duration
}

// NewStore connects to Redis and verifies the connection.
func NewStore(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Store{
		log:    log.Named("session"),
		client: client,
		ttl:    cfg.Session.TTL,
	}, nil
}

// Create issues a fresh opaque token bound to the user id.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	s.log.Debugw("session created", "user_id", userID)
	return token, nil
}

// Resolve returns the user id bound to the token, or ErrUnauthorized when the
// token is unknown or expired.
func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", entities.ErrUnauthorized
		}
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// Destroy invalidates the token. Destroying an unknown token is a no-op.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
