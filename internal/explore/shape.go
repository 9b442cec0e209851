package explore

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory is shown when a record carries no category.
const DefaultCategory = "PROJET"

// Jitter extents for card layouts: rotation in degrees, vertical offset in
// display units. Values are drawn once per shaping pass so a list does not
// wobble on re-render.
const (
	maxRotation = 0.75
	maxOffsetY  = 3.0
)

// ViewModel is a display-ready project record, derived per fetch and never
// persisted.
type ViewModel struct {
	ID           uint            `json:"id"`
	Nom          string          `json:"nom"`
	Description  string          `json:"description"`
	Categorie    string          `json:"categorie"`
	Budget       decimal.Decimal `json:"budget"`
	Localisation string          `json:"localisation"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	ImageURL     string          `json:"imageUrl"`
	Rotation     float64         `json:"rotation"`
	OffsetY      float64         `json:"offsetY"`
}

// Shape converts fetched records into view models, preserving input order.
// baseOrigin qualifies site-relative image paths; rng feeds the display
// jitter and is consumed once per record, so one call yields one stable
// layout. Records missing optional fields degrade to defaults.
func Shape(records []Record, baseOrigin string, rng *rand.Rand) []ViewModel {
	models := make([]ViewModel, 0, len(records))
	for i, r := range records {
		models = append(models, ViewModel{
			ID:           r.ID,
			Nom:          r.Nom,
			Description:  r.Description,
			Categorie:    categoryLabel(r.Categorie),
			Budget:       r.Budget,
			Localisation: r.Localisation,
			Latitude:     r.Latitude,
			Longitude:    r.Longitude,
			ImageURL:     ResolveImageURL(r.Images, i, baseOrigin),
			Rotation:     (rng.Float64() - 0.5) * 2 * maxRotation,
			OffsetY:      (rng.Float64() - 0.5) * 2 * maxOffsetY,
		})
	}
	return models
}

// ResolveImageURL picks the record's display image. The placeholder keyed
// by the record's position in the fetch guarantees every card renders an
// image; a main-flagged image wins over collection order; absolute URLs
// pass through untouched; anything else is a site-relative upload path.
func ResolveImageURL(images []ImageRef, index int, baseOrigin string) string {
	if len(images) == 0 {
		return PlaceholderURL(index)
	}
	selected := images[0]
	for _, img := range images {
		if img.IsMain {
			selected = img
			break
		}
	}
	if strings.HasPrefix(selected.URL, "http") {
		return selected.URL
	}
	return joinOrigin(baseOrigin, selected.URL)
}

// PlaceholderURL returns the deterministic fallback image for a record at
// the given fetch position.
func PlaceholderURL(index int) string {
	return fmt.Sprintf("https://picsum.photos/id/%d/400/300", index%50+150)
}

// joinOrigin concatenates origin and path with exactly one slash between
// them, whatever either side carries.
func joinOrigin(origin, path string) string {
	return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(path, "/")
}

func categoryLabel(category string) string {
	if category == "" {
		return DefaultCategory
	}
	return strings.ToUpper(category)
}
