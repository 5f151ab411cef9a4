package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CollectionMethod is recorded in every result.
const CollectionMethod = "Universal Region Collector with Token Caching"

// DevelopmentPlans holds the raw plan lists returned for a region.
type DevelopmentPlans struct {
	Road []json.RawMessage `json:"road"`
	Rail []json.RawMessage `json:"rail"`
	Jigu []json.RawMessage `json:"jigu"`
}

// CollectionResult is everything one region run produced.
type CollectionResult struct {
	RunID            uuid.UUID         `json:"runId"`
	CollectionTime   time.Time         `json:"collectionTime"`
	Region           string            `json:"region"`
	Location         string            `json:"location"`
	Method           string            `json:"method"`
	FetchedCount     int               `json:"fetchedCount"`
	Complexes        []Complex         `json:"complexes"`
	Statistics       *Statistics       `json:"statistics"`
	DevelopmentPlans *DevelopmentPlans `json:"developmentPlans,omitempty"`
}
