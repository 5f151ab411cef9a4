package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"land-collector/models"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestTokenCacheExpiryWindow(t *testing.T) {
	issued := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	clk := &clock{t: issued}
	cache := NewTokenCache(filepath.Join(t.TempDir(), "token_cache.json"), clk.now)

	if err := cache.Save(models.NewCredential("abc", issued)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	clk.t = issued.Add(3599 * time.Second)
	cred, ok := cache.Load()
	if !ok || cred.Token != "abc" {
		t.Fatalf("T+3599s: got (%q, %v), want valid", cred.Token, ok)
	}

	clk.t = issued.Add(3600 * time.Second)
	if _, ok := cache.Load(); ok {
		t.Error("T+3600s: token should be expired")
	}

	clk.t = issued.Add(3601 * time.Second)
	if _, ok := cache.Load(); ok {
		t.Error("T+3601s: token should be expired")
	}
}

func TestTokenCacheFileFormat(t *testing.T) {
	issued := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "token_cache.json")
	cache := NewTokenCache(path, func() time.Time { return issued })

	if err := cache.Save(models.NewCredential("abc", time.Time{})); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var f map[string]any
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("cache file is not JSON: %v", err)
	}
	if f["token"] != "abc" {
		t.Errorf("token: %v", f["token"])
	}
	if int64(f["issuedAt"].(float64)) != issued.UnixMilli() {
		t.Errorf("issuedAt: got %v, want save time", f["issuedAt"])
	}
	if int64(f["expiry"].(float64)) != issued.Add(time.Hour).UnixMilli() {
		t.Errorf("expiry: got %v", f["expiry"])
	}
}

func TestTokenCacheFailsSoft(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"malformed":   `{"token":`,
		"empty token": `{"token":"","issuedAt":` + jsonNow() + `}`,
		"wrong type":  `{"token":42}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, ok := NewTokenCache(path, nil).Load(); ok {
				t.Error("expected absent")
			}
		})
	}

	if _, ok := NewTokenCache(filepath.Join(dir, "missing.json"), nil).Load(); ok {
		t.Error("missing file should be absent")
	}
}

func TestTokenCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token_cache.json")
	cache := NewTokenCache(path, nil)
	if err := cache.Clear(); err != nil {
		t.Errorf("Clear on missing file: %v", err)
	}
	if err := cache.Save(models.NewCredential("abc", time.Now())); err != nil {
		t.Fatal(err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cache file should be gone")
	}
}

func jsonNow() string {
	b, _ := json.Marshal(time.Now().UnixMilli())
	return string(b)
}
