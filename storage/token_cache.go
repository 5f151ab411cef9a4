package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"land-collector/models"
)

// tokenFile is the on-disk cache layout; times are Unix milliseconds.
type tokenFile struct {
	Token    string `json:"token"`
	IssuedAt int64  `json:"issuedAt"`
	Expiry   int64  `json:"expiry"`
}

// TokenCache persists one credential as a JSON file.
type TokenCache struct {
	path string
	now  func() time.Time
}

// NewTokenCache returns a cache at path. now defaults to time.Now.
func NewTokenCache(path string, now func() time.Time) *TokenCache {
	if now == nil {
		now = time.Now
	}
	return &TokenCache{path: path, now: now}
}

// Load returns the cached credential if the file exists, parses, holds a
// token and was issued less than an hour ago.
func (c *TokenCache) Load() (models.Credential, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return models.Credential{}, false
	}

	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return models.Credential{}, false
	}

	cred := models.NewCredential(f.Token, time.UnixMilli(f.IssuedAt))
	if !cred.ValidAt(c.now()) {
		return models.Credential{}, false
	}
	return cred, true
}

// Save writes cred stamped with the current time, replacing the file
// atomically.
func (c *TokenCache) Save(cred models.Credential) error {
	issued := c.now()
	data, err := json.Marshal(tokenFile{
		Token:    cred.Token,
		IssuedAt: issued.UnixMilli(),
		Expiry:   issued.Add(models.CredentialTTL).UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("token cache: encode: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("token cache: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".token-*.tmp")
	if err != nil {
		return fmt.Errorf("token cache: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("token cache: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("token cache: close: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("token cache: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("token cache: replace: %w", err)
	}
	return nil
}

// Clear removes the cache file. A missing file is not an error.
func (c *TokenCache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("token cache: clear: %w", err)
	}
	return nil
}

// Path returns the cache file location.
func (c *TokenCache) Path() string { return c.path }
