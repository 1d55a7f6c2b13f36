package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	goredis "github.com/redis/go-redis/v9"
)

// Options описывает подключение к Redis
type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix добавляется ко всем ключам, чтобы несколько устройств могли
	// делить один инстанс
	Prefix string
}

type Storage struct {
	client *goredis.Client
	prefix string
}

func New(ctx context.Context, opts Options, log *slog.Logger) (*Storage, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to ping Redis", slog.String("error", err.Error()))
		if cerr := rdb.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	log.Info("Connected to Redis successfully", slog.String("addr", opts.Addr))

	return NewWithClient(rdb, opts.Prefix), nil
}

// NewWithClient оборачивает уже созданный клиент
func NewWithClient(client *goredis.Client, prefix string) *Storage {
	return &Storage{client: client, prefix: prefix}
}

func (s *Storage) key(k string) string {
	return s.prefix + k
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}
