package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/taxe/internal/pkg/constants"
	"github.com/piresc/taxe/internal/pkg/database"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/models"
)

// RedisStore keeps the session in Redis under a per-device namespace
type RedisStore struct {
	redisClient *database.RedisClient
	namespace   string
	ttl         time.Duration
	now         func() time.Time
}

// NewRedisStore creates a Redis backed session. A zero ttl keeps keys forever.
func NewRedisStore(redisClient *database.RedisClient, cfg models.SessionConfig) *RedisStore {
	ns := cfg.Namespace
	if ns == "" {
		ns = "default"
	}
	return &RedisStore{
		redisClient: redisClient,
		namespace:   ns,
		ttl:         cfg.TTL,
		now:         time.Now,
	}
}

func (s *RedisStore) key(format string) string {
	return fmt.Sprintf(format, s.namespace)
}

func (s *RedisStore) keys() []string {
	return []string{
		s.key(constants.KeySessionToken),
		s.key(constants.KeySessionUser),
		s.key(constants.KeySessionActiveBooking),
	}
}

// Invalidate deletes every session key in one DEL; deleting absent keys is not an error
func (s *RedisStore) Invalidate(ctx context.Context) error {
	if err := s.redisClient.Delete(ctx, s.keys()...); err != nil {
		return fmt.Errorf("failed to invalidate session in Redis: %w", err)
	}
	return nil
}

// IsValid reports whether a token is stored and not known to be expired.
// Redis failures count as invalid.
func (s *RedisStore) IsValid(ctx context.Context) bool {
	token, err := s.Token(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoToken) {
			logger.Warn("Failed to read session token", logger.Err(err))
		}
		return false
	}
	return !TokenExpired(token, s.now())
}

func (s *RedisStore) PutToken(ctx context.Context, token string) error {
	if err := s.redisClient.Set(ctx, s.key(constants.KeySessionToken), token, s.ttl); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, constants.KeySessionToken, ErrNoToken)
}

func (s *RedisStore) PutUser(ctx context.Context, user models.UserProfile) error {
	data, err := json.Marshal(toStoredUser(user))
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	if err := s.redisClient.Set(ctx, s.key(constants.KeySessionUser), data, s.ttl); err != nil {
		return fmt.Errorf("failed to store user in Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) User(ctx context.Context) (*models.UserProfile, error) {
	val, err := s.get(ctx, constants.KeySessionUser, ErrNoUser)
	if err != nil {
		return nil, err
	}
	var u storedUser
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session user: %w", err)
	}
	p := u.profile()
	return &p, nil
}

func (s *RedisStore) PutActiveBooking(ctx context.Context, bookingID string) error {
	if err := s.redisClient.Set(ctx, s.key(constants.KeySessionActiveBooking), bookingID, s.ttl); err != nil {
		return fmt.Errorf("failed to store active booking in Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) ActiveBooking(ctx context.Context) (string, error) {
	return s.get(ctx, constants.KeySessionActiveBooking, ErrNoActiveBooking)
}

func (s *RedisStore) DeleteActiveBooking(ctx context.Context) error {
	if err := s.redisClient.Delete(ctx, s.key(constants.KeySessionActiveBooking)); err != nil {
		return fmt.Errorf("failed to delete active booking in Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, format string, missing error) (string, error) {
	val, err := s.redisClient.Get(ctx, s.key(format))
	if errors.Is(err, redis.Nil) {
		return "", missing
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s from Redis: %w", s.key(format), err)
	}
	return val, nil
}
