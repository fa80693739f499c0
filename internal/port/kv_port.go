package port

import (
	"context"
)

// KVStore is the asynchronous key-value collaborator backing session state.
// Get reports ok=false when the key is absent; every call may fail.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
