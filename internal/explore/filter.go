package explore

import "strings"

// CategoryAll is the sentinel category meaning "no category filter". It is
// the literal value the mobile client sends for the default chip.
const CategoryAll = "Tous"

// MatchesText reports whether the query matches the record's name or
// description, case-insensitively. An empty query matches everything and
// absent fields compare as empty strings.
func MatchesText(r Record, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Nom), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

// MatchesCategory reports whether the record belongs to the selected
// category. Matching is exact; CategoryAll matches everything.
func MatchesCategory(r Record, category string) bool {
	return category == CategoryAll || category == "" || r.Categorie == category
}

// Markers returns the records to render on the map: text and category
// filtered, restricted to records with usable coordinates. Input order is
// preserved and the input slice is never mutated.
func Markers(records []Record, query, category string) []Record {
	markers := make([]Record, 0, len(records))
	for _, r := range records {
		if !r.HasCoordinates() {
			continue
		}
		if MatchesText(r, query) && MatchesCategory(r, category) {
			markers = append(markers, r)
		}
	}
	return markers
}

// InView restricts markers to the given viewport. A nil region means the
// map has not produced a region yet; every marker stays listed rather than
// showing a false-empty panel.
func InView(markers []Record, region *Region) []Record {
	if region == nil {
		return markers
	}
	visible := make([]Record, 0, len(markers))
	for _, r := range markers {
		if region.Contains(*r.Latitude, *r.Longitude) {
			visible = append(visible, r)
		}
	}
	return visible
}

// Filter computes both derived subsets in one pass over the inputs: the
// markers for the map and the viewport-bounded list for the panel. It is a
// pure function of its arguments; identical inputs produce identical
// outputs in the same order, so it is safe to re-run on every keystroke or
// viewport change.
func Filter(records []Record, query, category string, region *Region) (markers, listed []Record) {
	markers = Markers(records, query, category)
	listed = InView(markers, region)
	return markers, listed
}
