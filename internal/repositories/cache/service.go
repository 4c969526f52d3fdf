package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trustlance/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService caches entity snapshots. Cached values are whole records,
// never derived aggregates; dashboards always recompute from source rows.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// User caching
func (s *CacheService) CacheUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("cannot cache nil user")
	}

	keys := []string{
		s.GenerateKey("user", "id", user.ID),
		s.GenerateKey("user", "email", user.Email),
	}
	for _, key := range keys {
		if err := s.Set(ctx, key, user); err != nil {
			return err
		}
	}
	return nil
}

func (s *CacheService) GetUser(ctx context.Context, key string) (*models.User, error) {
	var user models.User
	found, err := s.Get(ctx, key, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.New("user not found in cache")
	}
	return &user, nil
}

func (s *CacheService) InvalidateUser(ctx context.Context, userID uint) error {
	user, err := s.GetUser(ctx, s.GenerateKey("user", "id", userID))
	if err != nil {
		return s.Delete(ctx, s.GenerateKey("user", "id", userID))
	}

	return s.Delete(ctx,
		s.GenerateKey("user", "id", userID),
		s.GenerateKey("user", "email", user.Email),
	)
}

// Project caching. Keyed by id with the milestone list embedded, so a
// cached read always sees a consistent project+milestones snapshot.
func (s *CacheService) CacheProject(ctx context.Context, project *models.Project) error {
	if project == nil {
		return errors.New("cannot cache nil project")
	}
	return s.Set(ctx, s.GenerateKey("project", "id", project.ID), project)
}

func (s *CacheService) GetProject(ctx context.Context, projectID uint) (*models.Project, bool, error) {
	var project models.Project
	found, err := s.Get(ctx, s.GenerateKey("project", "id", projectID), &project)
	if err != nil || !found {
		return nil, false, err
	}
	return &project, true, nil
}

func (s *CacheService) InvalidateProject(ctx context.Context, projectID uint) error {
	return s.Delete(ctx, s.GenerateKey("project", "id", projectID))
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
