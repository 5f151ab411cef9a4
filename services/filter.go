package services

import (
	"strings"

	"land-collector/models"
)

// RegionFilter keeps complexes that lie inside a region's strict bounds
// and whose name carries none of its exclusion keywords.
type RegionFilter struct {
	// RequireKeyword additionally drops names with no inclusion keyword.
	RequireKeyword bool
}

// Filter returns the kept records in input order. It never mutates records.
func (f RegionFilter) Filter(records []models.Complex, region models.Region) []models.Complex {
	out := make([]models.Complex, 0, len(records))
	for _, c := range records {
		if f.Keep(c, region) {
			out = append(out, c)
		}
	}
	return out
}

// Keep decides a single record. Records without coordinates are dropped.
func (f RegionFilter) Keep(c models.Complex, region models.Region) bool {
	if c.Latitude == nil || c.Longitude == nil {
		return false
	}
	if !region.Bounds.Contains(*c.Latitude, *c.Longitude) {
		return false
	}
	if containsAny(c.Name, region.ExcludeKeywords) {
		return false
	}
	if f.RequireKeyword && !containsAny(c.Name, region.Keywords) {
		return false
	}
	return true
}

// Group returns the first keyword (in list order) found in name, or
// models.OtherGroup.
func Group(name string, keywords []string) string {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(name, kw) {
			return kw
		}
	}
	return models.OtherGroup
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
