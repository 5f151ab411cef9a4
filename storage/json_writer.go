package storage

import (
	"encoding/json"
	"fmt"

	"land-collector/models"
)

// JSONWriter writes the full result, raw portal objects included.
type JSONWriter struct{}

// NewJSONWriter returns a JSONWriter.
func NewJSONWriter() *JSONWriter { return &JSONWriter{} }

// Write renders result to base+".json".
func (w *JSONWriter) Write(result *models.CollectionResult, base string) (string, error) {
	path := base + ".json"

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json: encode: %w", err)
	}
	if err := writeFile(path, append(data, '\n')); err != nil {
		return "", fmt.Errorf("json: write file %q: %w", path, err)
	}
	return path, nil
}
