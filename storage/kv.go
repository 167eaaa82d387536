// Package storage is the durable key/value layer behind the session and
// favorites stores. State lives under two fixed keys; writes are full
// overwrites and last-write-wins per key.
package storage

import (
	"context"
	"errors"
)

const (
	SessionKey   = "session"
	FavoritesKey = "favorites"
)

var ErrNotFound = errors.New("key not found")

type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}
