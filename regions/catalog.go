package regions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"land-collector/models"
)

// ErrRegionNotFound is returned by Lookup for names outside the catalog.
var ErrRegionNotFound = errors.New("region not found")

// Catalog maps region names to descriptors, keeping insertion order.
type Catalog struct {
	byName map[string]models.Region
	order  []string
}

// New builds a catalog from descriptors. Later entries replace earlier
// ones with the same name.
func New(list ...models.Region) *Catalog {
	c := &Catalog{byName: make(map[string]models.Region)}
	for _, r := range list {
		c.put(r)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(builtin...)
}

func (c *Catalog) put(r models.Region) {
	if _, exists := c.byName[r.Name]; !exists {
		c.order = append(c.order, r.Name)
	}
	c.byName[r.Name] = r
}

// Lookup returns the descriptor for an exact (trimmed) name.
func (c *Catalog) Lookup(name string) (models.Region, error) {
	name = strings.TrimSpace(name)
	if r, ok := c.byName[name]; ok {
		return r, nil
	}
	return models.Region{}, fmt.Errorf("%w: %q (supported: %s)",
		ErrRegionNotFound, name, strings.Join(c.order, ", "))
}

// Names returns region names in catalog order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// ByProvince groups region names by province, provinces in first-seen order.
func (c *Catalog) ByProvince() ([]string, map[string][]string) {
	var provinces []string
	groups := make(map[string][]string)
	for _, name := range c.order {
		p := c.byName[name].Province
		if _, ok := groups[p]; !ok {
			provinces = append(provinces, p)
		}
		groups[p] = append(groups[p], name)
	}
	return provinces, groups
}

type regionFile struct {
	Regions []models.Region `yaml:"regions"`
}

// LoadFile merges descriptors from a YAML file of the form
//
//	regions:
//	  - name: 강남구
//	    cortarNo: "1168000000"
//	    ...
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("regions: read %q: %w", path, err)
	}

	var f regionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("regions: parse %q: %w", path, err)
	}

	for i, r := range f.Regions {
		if err := validate(r); err != nil {
			return fmt.Errorf("regions: %q entry %d: %w", path, i, err)
		}
	}
	for _, r := range f.Regions {
		c.put(r)
	}
	return nil
}

func validate(r models.Region) error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return errors.New("name is required")
	case strings.TrimSpace(r.CortarNo) == "":
		return fmt.Errorf("%s: cortarNo is required", r.Name)
	case !r.Bounds.Valid():
		return fmt.Errorf("%s: bounds must satisfy north > south and east > west", r.Name)
	case len(r.Keywords) == 0:
		return fmt.Errorf("%s: at least one keyword is required", r.Name)
	}
	return nil
}
