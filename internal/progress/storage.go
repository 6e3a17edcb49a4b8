package progress

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// StorageKey is the fixed key under which the serialized progress record
// lives, whatever the backend.
const StorageKey = "code-the-key-progress"

// Storage is a string-keyed blob store. Get reports ok=false when the key
// has never been written; that is not an error.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// MemoryStorage keeps blobs in a plain map. Used in tests and as the
// fallback when no durable medium is configured.
type MemoryStorage struct {
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// FileStorage stores each key as one file under a directory. The progress
// record is a single blob, fully rewritten on every mutation.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := os.ReadFile(filepath.Join(f.dir, key+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (f *FileStorage) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.dir, key+".json"), value, 0o644)
}

// RedisStorage keeps blobs in redis with no expiry.
type RedisStorage struct {
	rdb *redis.Client
}

func NewRedisStorage(rdb *redis.Client) *RedisStorage {
	return &RedisStorage{rdb: rdb}
}

func (r *RedisStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}
