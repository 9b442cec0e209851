package explore

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"assomap/internal/model"
)

// ImageRef is an image as carried inside a fetched project record.
type ImageRef struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	IsMain    bool   `json:"isMain"`
	IsPreview bool   `json:"isPreview"`
}

// Record is a project as fetched from the API, before shaping. Coordinates
// are pointers: a record the server returned without numeric coordinates
// must be recognizable and kept off the map.
type Record struct {
	ID            uint            `json:"id"`
	Nom           string          `json:"nom"`
	Description   string          `json:"description"`
	Longitude     *float64        `json:"longitude"`
	Latitude      *float64        `json:"latitude"`
	UtilisateurID uint            `json:"utilisateur_id"`
	DateDebut     string          `json:"date_debut"`
	Budget        decimal.Decimal `json:"budget"`
	Categorie     string          `json:"categorie"`
	Localisation  string          `json:"localisation"`
	Images        []ImageRef      `json:"-"`
}

// recordAlias avoids UnmarshalJSON recursion; the two historical spellings
// of the nested image key are normalized into Record.Images right here so
// no consumer ever checks both.
type recordAlias Record

type recordEnvelope struct {
	recordAlias
	ImagesUpper []ImageRef `json:"Images"`
	ImagesLower []ImageRef `json:"images"`
}

// UnmarshalJSON decodes a record, accepting the image collection under
// either "Images" or "images" and defaulting to an empty collection.
func (r *Record) UnmarshalJSON(data []byte) error {
	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*r = Record(env.recordAlias)
	switch {
	case len(env.ImagesUpper) > 0:
		r.Images = env.ImagesUpper
	case len(env.ImagesLower) > 0:
		r.Images = env.ImagesLower
	default:
		r.Images = nil
	}
	return nil
}

// HasCoordinates reports whether the record carries usable coordinates.
func (r Record) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// DecodeRecords parses an API response body into records. A body that is
// not a JSON array yields an empty result instead of an error: a malformed
// feed should render as empty, not crash the consumer.
func DecodeRecords(data []byte) []Record {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// FromModel converts a stored project into a fetched-record view so the
// server can run the same shaping and filtering the client does.
func FromModel(p model.Project) Record {
	lat, lng := p.Latitude, p.Longitude
	rec := Record{
		ID:            p.ID,
		Nom:           p.Nom,
		Description:   p.Description,
		Latitude:      &lat,
		Longitude:     &lng,
		UtilisateurID: p.UtilisateurID,
		DateDebut:     p.DateDebut,
		Budget:        p.Budget,
		Categorie:     p.Categorie,
		Localisation:  p.Localisation,
	}
	for _, img := range p.Images {
		rec.Images = append(rec.Images, ImageRef{
			ID:        img.ID,
			URL:       img.URL,
			IsMain:    img.IsMain,
			IsPreview: img.IsPreview,
		})
	}
	return rec
}

// FromModels converts a stored project slice, preserving order.
func FromModels(projects []model.Project) []Record {
	records := make([]Record, 0, len(projects))
	for _, p := range projects {
		records = append(records, FromModel(p))
	}
	return records
}
