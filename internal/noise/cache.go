package noise

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorruptCache is returned when the cache file exists but does not hold
// a JSON array of strings.
var ErrCorruptCache = errors.New("noise: corrupt noise-word cache")

// FileCache persists a Set as a sorted JSON array of strings.
type FileCache struct {
	path string
}

// NewFileCache creates a cache at path.
func NewFileCache(path string) *FileCache { return &FileCache{path: path} }

// Path returns the cache location.
func (c *FileCache) Path() string { return c.path }

// Read returns the persisted set. found is false when there is no usable
// file; an error is returned only for content that cannot be decoded.
func (c *FileCache) Read() (set Set, found bool, err error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Set{}, false, fmt.Errorf("read %s: %w", c.path, err)
		}
		return Set{}, false, nil
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return Set{}, false, fmt.Errorf("%w: %s: %v", ErrCorruptCache, c.path, err)
	}
	// Write always emits an array, so null never comes from this cache.
	if words == nil {
		return Set{}, false, fmt.Errorf("%w: %s: not an array", ErrCorruptCache, c.path)
	}
	return NewSet(words...), true, nil
}

// Write replaces the cache contents with set. The file is written to a
// sibling temp file and renamed into place.
func (c *FileCache) Write(set Set) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.Marshal(set.Words())
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp cache: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}
