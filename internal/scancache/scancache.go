// Package scancache stores per-file scan results on disk so that unchanged
// files under an unchanged configuration are not rescanned.
package scancache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"unimath/internal/diag"
)

// Schema is bumped whenever Payload changes shape.
const schemaVersion uint16 = 1

// Key identifies one file content under one configuration.
type Key [32]byte

// KeyFor combines a content hash with a configuration fingerprint.
func KeyFor(content [32]byte, fingerprint string) Key {
	h := sha256.New()
	_, _ = h.Write(content[:])
	_, _ = h.Write([]byte(fingerprint))
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Payload is what gets written for a key.
type Payload struct {
	Schema      uint16            `msgpack:"schema"`
	Path        string            `msgpack:"path"`
	Diagnostics []diag.Diagnostic `msgpack:"diags"`
}

// Cache is safe for concurrent use. A nil *Cache is a valid, always-empty cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open returns the cache under $XDG_CACHE_HOME/<app>, or ~/.cache/<app>.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app))
}

// OpenDir returns a cache rooted at dir, creating it if needed.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key Key) string {
	s := key.String()
	return filepath.Join(c.dir, "scan", s[:2], s+".mp")
}

// Put writes the payload atomically: a temp file is renamed into place.
func (c *Cache) Put(key Key, path string, items []diag.Diagnostic) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload := Payload{Schema: schemaVersion, Path: path, Diagnostics: items}
	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get returns the cached diagnostics for key. A payload written by another
// schema version counts as a miss.
func (c *Cache) Get(key Key) ([]diag.Diagnostic, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	if payload.Diagnostics == nil {
		payload.Diagnostics = []diag.Diagnostic{}
	}
	return payload.Diagnostics, true, nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "scan"))
}
