package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, the default for
// CLI runs. Keys are hashed into a two-level layout so a season of menu
// edits does not pile thousands of files into one directory.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	return &FileCache{dir: dir}, nil
}

// entry wraps cached bytes with expiry metadata.
type entry struct {
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Get retrieves a value. Unreadable or expired entries count as misses and
// are removed on the way out.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return e.Data, true, nil
}

// Set stores a value. The entry is written to a temporary file first and
// renamed into place, so a crashed process never leaves a torn entry behind.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{
		Data:      data,
		CreatedAt: time.Now(),
	}
	if ttl > 0 {
		e.ExpiresAt = e.CreatedAt.Add(ttl)
	}

	encoded, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes a value. Deleting an absent key is not an error.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to its file, sharding on the first two hash characters.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
