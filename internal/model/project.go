package model

import "github.com/shopspring/decimal"

// Project represents a community initiative with a location, a budget and a
// category. Coordinates are WGS84 decimal degrees; the store does not
// validate ranges, the map renderer assumes lon ∈ [-180,180], lat ∈ [-90,90].
type Project struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Nom           string          `json:"nom" gorm:"size:255;not null"`
	Description   string          `json:"description" gorm:"size:1024;not null"`
	Longitude     float64         `json:"longitude" gorm:"not null"`
	Latitude      float64         `json:"latitude" gorm:"not null"`
	UtilisateurID uint            `json:"utilisateur_id" gorm:"column:utilisateur_id;not null;index"`
	DateDebut     string          `json:"date_debut" gorm:"column:date_debut;size:10;not null"`
	Budget        decimal.Decimal `json:"budget" gorm:"type:decimal(20,2);not null"`
	Categorie     string          `json:"categorie" gorm:"size:64;not null"`
	Localisation  string          `json:"localisation" gorm:"size:255;not null"`

	// Relations. The JSON key matches the legacy API payload, which nests
	// the image collection under "Images".
	Images []Image `json:"Images,omitempty" gorm:"foreignKey:ProjetID"`
}

// TableName keeps the legacy singular table name.
func (Project) TableName() string { return "Projet" }
