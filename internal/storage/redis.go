package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"task-query-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// taskKey is the per-user hash holding that user's tasks, one JSON-encoded
// task per field keyed by task id.
func taskKey(userID string) string {
	return fmt.Sprintf("tasks:%s", userID)
}

type RedisSourceConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultRedisSourceConfig() *RedisSourceConfig {
	return &RedisSourceConfig{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// RedisSource reads tasks from a Redis-backed store written by the mobile
// sync collaborator.
type RedisSource struct {
	config *RedisSourceConfig
	client *redis.Client
}

func NewRedisSource(config *RedisSourceConfig) *RedisSource {
	if config == nil {
		config = DefaultRedisSourceConfig()
	}
	return &RedisSource{config: config}
}

func (s *RedisSource) Connect(ctx context.Context) error {
	if s.client == nil {
		s.client = redis.NewClient(&redis.Options{
			Addr:         s.config.Addr,
			Password:     s.config.Password,
			DB:           s.config.DB,
			PoolSize:     s.config.PoolSize,
			MinIdleConns: s.config.MinIdleConns,
			MaxRetries:   s.config.MaxRetries,
			DialTimeout:  s.config.DialTimeout,
			ReadTimeout:  s.config.ReadTimeout,
			WriteTimeout: s.config.WriteTimeout,
		})
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.config.DialTimeout)
	defer cancel()
	if err := s.client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (s *RedisSource) Connected() bool {
	if s.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err() == nil
}

func (s *RedisSource) Tasks(ctx context.Context, userID, status string) ([]models.Task, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}

	entries, err := s.client.HGetAll(ctx, taskKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read tasks for %s: %w", userID, err)
	}

	// Hash fields come back unordered; iterate by sorted id so retrieval
	// order is deterministic and the stable sort upstream stays meaningful.
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tasks := make([]models.Task, 0, len(entries))
	for _, id := range ids {
		var task models.Task
		if err := json.Unmarshal([]byte(entries[id]), &task); err != nil {
			return nil, fmt.Errorf("decode task %s: %w", id, err)
		}
		if status != "" && task.Status != status {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *RedisSource) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
