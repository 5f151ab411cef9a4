package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"land-collector/models"
)

var unsafeNameChars = regexp.MustCompile(`[^\p{L}\p{N}_]`)

// SafeName replaces anything but letters, digits and '_' with '_'.
func SafeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// BaseName returns "{dir}/{safeRegion}_data_{timestamp}" without extension.
func BaseName(dir, region string, at time.Time) string {
	ts := strings.NewReplacer(":", "-", ".", "-").Replace(at.UTC().Format("2006-01-02T15:04:05.000Z"))
	return filepath.Join(dir, fmt.Sprintf("%s_data_%s", SafeName(region), ts))
}

// WriteAll renders result with every writer. It stops at the first failure.
func WriteAll(result *models.CollectionResult, dir string, writers ...ReportWriter) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := BaseName(dir, result.Region, result.CollectionTime)
	paths := make([]string, 0, len(writers))
	for _, w := range writers {
		p, err := w.Write(result, base)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// writeFile replaces path with data via a temp file in the same directory.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
