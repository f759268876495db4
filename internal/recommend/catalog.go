// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package recommend

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fallbacks for crops missing from the catalog.
const (
	FallbackImage       = "https://via.placeholder.com/200x150?text=No+Image"
	FallbackDescription = "No description available for this crop."
)

var defaultImages = map[string]string{
	"banana":     "https://media.istockphoto.com/id/1008848042/photo/banana-plantation.jpg?s=612x612&w=0&k=20&c=LFsEaRVEF3tBurWYnBX0hyzcp6eYtbb36USQ7IOhzxs=",
	"maize":      "https://cdn.britannica.com/36/167236-050-BF90337E/Ears-corn.jpg",
	"rice":       "https://cdn.britannica.com/89/140889-050-EC3F00BF/Ripening-heads-rice-Oryza-sativa.jpg",
	"apple":      "https://www.shutterstock.com/image-photo/autumn-day-rural-garden-frame-600nw-1798373137.jpg",
	"mango":      "https://images-cdn.ubuy.co.in/63751d7dcd47055dee73e183-mango-tree-choc-anon-miracle-mango.jpg",
	"watermelon": "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcS8csV_EW8K6S7dMxAAZwCtF83qQbPQr9UgMQ&s",
	"grapes":     "https://www.apnikheti.com/upload/crops/1850idea99grapes.jpg",
	"papaya":     "https://plantix.net/en/library/assets/custom/crop-images/papaya.jpeg",
	"cotton":     "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTDhnhqJIj85bgubo4cJR9FeewK6k5WEGyVJg&s",
	"coffee":     "https://rukminim2.flixcart.com/image/704/844/xif0q/shopsy-plant-sapling/h/p/t/perennial-no-yes-coffee-tree-plant-1-punarva-original-imahyxrc44rvpghk.jpeg?q=90&crop=false",
	"coconut":    "https://img-cdn.krishijagran.com/61498/coconut-farm.jpg",
	"orange":     "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRYpKd8dTisxFjbJEfAU_Rmbdp7ZRnlFlSZ9g&s",
	"chickpea":   "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTZbM06fj87wQAq-DO05EdnNs6enYJDQ5VKuw&s",
}

var defaultDescriptions = map[string]string{
	"rice":        "Staple cereal grown in flooded fields; thrives in warm, humid climates with heavy rainfall.",
	"maize":       "Versatile cereal for food and fodder; prefers well-drained loam and moderate rainfall.",
	"chickpea":    "Drought-tolerant pulse of cool, dry seasons; fixes nitrogen in the soil.",
	"kidneybeans": "Protein-rich bean suited to cool temperatures and low humidity.",
	"pigeonpeas":  "Hardy legume that tolerates drought and poor soils in warm regions.",
	"mothbeans":   "Very drought-resistant legume of arid and semi-arid zones.",
	"mungbean":    "Short-season pulse for warm, humid weather; often grown between cereal crops.",
	"blackgram":   "Warm-season pulse that prefers humid conditions and loamy soil.",
	"lentil":      "Cool-season legume with low water needs; grows well on light soils.",
	"pomegranate": "Fruit shrub suited to semi-arid climates with hot, dry summers.",
	"banana":      "Fast-growing tropical fruit needing warmth, humidity and rich, moist soil.",
	"mango":       "Tropical fruit tree that flowers best after a dry spell; tolerates heat.",
	"grapes":      "Vine fruit for warm, dry climates and well-drained soil.",
	"watermelon":  "Warm-season vine with high water content; needs sandy loam and full sun.",
	"muskmelon":   "Sweet melon of hot, dry weather; sensitive to excess humidity.",
	"apple":       "Temperate fruit tree requiring winter chill and well-drained soil.",
	"orange":      "Citrus tree of subtropical climates; prefers slightly acidic soil.",
	"papaya":      "Quick-fruiting tropical plant that needs warmth and good drainage.",
	"coconut":     "Coastal palm of humid tropics; tolerates sandy, saline soils.",
	"cotton":      "Fibre crop for long, warm seasons and black or alluvial soils.",
	"jute":        "Fibre crop of hot, humid lowlands with high rainfall.",
	"coffee":      "Shade-loving shrub of tropical highlands with steady rainfall.",
}

// CatalogEntry is the display metadata for one crop.
type CatalogEntry struct {
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// Catalog maps crop names to display images and descriptions. It is
// read-only after construction. Lookups fall back to FallbackImage and
// FallbackDescription for unknown crops.
type Catalog struct {
	images       map[string]string
	descriptions map[string]string
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		images:       make(map[string]string, len(defaultImages)),
		descriptions: make(map[string]string, len(defaultDescriptions)),
	}
	for k, v := range defaultImages {
		c.images[k] = v
	}
	for k, v := range defaultDescriptions {
		c.descriptions[k] = v
	}
	return c
}

// catalogFile is the on-disk override format:
//
//	crops:
//	  rice:
//	    image: https://example.org/rice.jpg
//	    description: Paddy rice.
type catalogFile struct {
	Crops map[string]CatalogEntry `yaml:"crops"`
}

// LoadCatalog returns the built-in catalog with entries from the YAML file
// at path applied on top. Empty fields in the file leave the built-in value.
// An empty path returns DefaultCatalog.
func LoadCatalog(path string) (*Catalog, error) {
	c := DefaultCatalog()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	for crop, e := range f.Crops {
		crop = strings.TrimSpace(crop)
		if crop == "" {
			return nil, fmt.Errorf("parse catalog %s: empty crop name", path)
		}
		if e.Image != "" {
			c.images[crop] = e.Image
		}
		if e.Description != "" {
			c.descriptions[crop] = e.Description
		}
	}
	return c, nil
}

// Image returns the image URL for crop, or FallbackImage.
func (c *Catalog) Image(crop string) string {
	if v, ok := lookup(c.images, crop); ok {
		return v
	}
	return FallbackImage
}

// Description returns the description for crop, or FallbackDescription.
func (c *Catalog) Description(crop string) string {
	if v, ok := lookup(c.descriptions, crop); ok {
		return v
	}
	return FallbackDescription
}

// Recommendation builds the response entry for crop.
func (c *Catalog) Recommendation(crop string) Recommendation {
	return Recommendation{
		Crop:        crop,
		Image:       c.Image(crop),
		Description: c.Description(crop),
	}
}

// Len returns the number of crops with an image or a description.
func (c *Catalog) Len() int {
	n := len(c.images)
	for k := range c.descriptions {
		if _, ok := c.images[k]; !ok {
			n++
		}
	}
	return n
}

// lookup tries the exact name, then its lower-cased trimmed form.
func lookup(m map[string]string, crop string) (string, bool) {
	if v, ok := m[crop]; ok {
		return v, true
	}
	v, ok := m[strings.ToLower(strings.TrimSpace(crop))]
	return v, ok
}
