// Package jsonstore is the file-backed fallback store used when no database
// source is configured. Each collection is one pretty-printed JSON array on
// disk, matching the legacy data files, so an existing data directory keeps
// working unchanged.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a file-backed list of records. All mutations go through a
// per-collection mutex, so concurrent request handlers never interleave
// read-modify-write cycles on the same file.
type Collection[T any] struct {
	path string
	mu   sync.RWMutex
}

// NewCollection opens (or creates) the collection file <dir>/<name>.json.
func NewCollection[T any](dir, name string) (*Collection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	c := &Collection[T]{path: filepath.Join(dir, name+".json")}

	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		if err := c.write([]T{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return c, nil
}

// All returns every record in the collection.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.read()
}

// ReplaceAll overwrites the collection with the given records.
func (c *Collection[T]) ReplaceAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(items)
}

// Mutate applies fn to the current records and persists the result. The
// whole cycle holds the write lock.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) write(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	// write-then-rename keeps the file valid if the process dies mid-write
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, c.path)
}
