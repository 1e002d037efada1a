package domain

import "strings"

// DefaultSourceCRS is the source system assumed when a request names
// none: WGS 84 geographic coordinates.
const DefaultSourceCRS = "EPSG:4326"

// One selectable reference system: a display name grouped under a
// category, the EPSG-style identifier behind it, and whether values in
// it are planar (easting/northing) rather than angular.
type CatalogueEntry struct {
	Category  string
	Name      string
	Code      string
	Projected bool
}

// The fixed table of reference systems offered for conversion.
// Built once at startup and never written afterwards, so it is safe to
// share across concurrent requests. Lookups walk the entries in
// declaration order; when several names contain the same fragment the
// earliest entry wins.
type Catalogue struct {
	entries []CatalogueEntry
}

func NewCatalogue() *Catalogue {
	return &Catalogue{entries: []CatalogueEntry{
		{Category: "Global", Name: "WGS 84", Code: "EPSG:4326"},
		{Category: "Global", Name: "ITRF2014", Code: "EPSG:7912"},
		{Category: "Global", Name: "PZ-90.11", Code: "EPSG:7520"},
		{Category: "UTM (Indonesia)", Name: "WGS 84 / UTM Zona 48N (Indonesia Barat)", Code: "EPSG:32648", Projected: true},
		{Category: "UTM (Indonesia)", Name: "WGS 84 / UTM Zona 49N (Indonesia Tengah)", Code: "EPSG:32649", Projected: true},
		{Category: "UTM (Indonesia)", Name: "WGS 84 / UTM Zona 50N (Indonesia Timur)", Code: "EPSG:32650", Projected: true},
		{Category: "UTM (Indonesia)", Name: "ITRF2014 / UTM Zona 48N (Indonesia Barat)", Code: "EPSG:8052", Projected: true},
		{Category: "UTM (Indonesia)", Name: "ITRF2014 / UTM Zona 49N (Indonesia Tengah)", Code: "EPSG:8053", Projected: true},
		{Category: "UTM (Indonesia)", Name: "ITRF2014 / UTM Zona 50N (Indonesia Timur)", Code: "EPSG:8054", Projected: true},
		{Category: "UTM (Indonesia)", Name: "WGS 84 / UTM Zona 48S", Code: "EPSG:32748", Projected: true},
	}}
}

// Distinct category names in declaration order.
func (c *Catalogue) Categories() []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// Entries under one category, in declaration order.
func (c *Catalogue) Systems(category string) []CatalogueEntry {
	var out []CatalogueEntry
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Resolve returns the entry with the exact display name under the
// given category.
func (c *Catalogue) Resolve(category, name string) (CatalogueEntry, bool) {
	for _, e := range c.entries {
		if e.Category == category && e.Name == name {
			return e, true
		}
	}
	return CatalogueEntry{}, false
}

// FindByNamePart returns the first entry whose display name contains
// the fragment, case-insensitive. Blank fragments match nothing.
func (c *Catalogue) FindByNamePart(fragment string) (CatalogueEntry, bool) {
	needle := strings.ToLower(strings.TrimSpace(fragment))
	if needle == "" {
		return CatalogueEntry{}, false
	}
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			return e, true
		}
	}
	return CatalogueEntry{}, false
}
