package storage

import (
	"context"

	"land-collector/models"
)

// ReportWriter renders one region result to a file and returns its path.
type ReportWriter interface {
	Write(result *models.CollectionResult, base string) (string, error)
}

// ResultStore is a persistent sink for collection runs.
type ResultStore interface {
	Store(ctx context.Context, result *models.CollectionResult) error
	Close() error
}
