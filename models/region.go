package models

// Bounds is an inclusive latitude/longitude rectangle.
type Bounds struct {
	North float64 `json:"northLat" yaml:"northLat"`
	South float64 `json:"southLat" yaml:"southLat"`
	East  float64 `json:"eastLon" yaml:"eastLon"`
	West  float64 `json:"westLon" yaml:"westLon"`
}

// Contains reports whether the point lies inside b, edges included.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North &&
		lon >= b.West && lon <= b.East
}

// Expand pads b by lonMargin on the east/west edges and latMargin on the
// north/south edges.
func (b Bounds) Expand(lonMargin, latMargin float64) Bounds {
	return Bounds{
		North: b.North + latMargin,
		South: b.South - latMargin,
		East:  b.East + lonMargin,
		West:  b.West - lonMargin,
	}
}

// Valid reports whether north > south and east > west.
func (b Bounds) Valid() bool {
	return b.North > b.South && b.East > b.West
}

// Region describes one administrative area: how to query it upstream and
// which complexes belong to it.
type Region struct {
	Name            string   `json:"name" yaml:"name"`
	Province        string   `json:"province,omitempty" yaml:"province"`
	CortarNo        string   `json:"cortarNo" yaml:"cortarNo"`
	CenterLat       float64  `json:"centerLat" yaml:"centerLat"`
	CenterLon       float64  `json:"centerLon" yaml:"centerLon"`
	Bounds          Bounds   `json:"bounds" yaml:"bounds"`
	Keywords        []string `json:"keywords" yaml:"keywords"`
	ExcludeKeywords []string `json:"excludeKeywords" yaml:"excludeKeywords"`
}
