// Package storage defines the string key-value medium the record store is
// persisted on. Drivers live in the sub-packages.
package storage

import (
	"context"
	"errors"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var (
	ErrClosed        = errors.New("storage is closed")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// KV is a flat string-keyed store. Get reports ok=false for absent keys.
// Delete of an absent key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
