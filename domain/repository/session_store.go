package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by ISessionStore.Get when nothing is stored
// under the key.
var ErrKeyNotFound = errors.New("session store: key not found")

// ISessionStore is the key-value persistence capability injected into the
// session usecase. Implementations store string pairs; the usecase decides
// what goes into them. Substituting a map-backed store in tests must be
// enough to exercise every session behavior.
type ISessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}
