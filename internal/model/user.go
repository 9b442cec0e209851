package model

// Roles assignable to a user.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents an association or foundation account that owns projects.
// Table and column names follow the legacy schema.
type User struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Nom        string `json:"nom" gorm:"size:255;not null"`
	Prenom     string `json:"prenom" gorm:"size:255;not null"`
	Adresse    string `json:"adresse" gorm:"size:255"`
	DOB        string `json:"dob" gorm:"column:dob;size:10"`
	Phone      string `json:"phone" gorm:"size:32"`
	Email      string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	MotDePasse string `json:"-" gorm:"column:mot_de_passe;size:255;not null"` // bcrypt hash, never exposed in JSON
	Role       string `json:"role" gorm:"size:16;default:'USER'"`

	// Relations
	Projets []Project `json:"projets,omitempty" gorm:"foreignKey:UtilisateurID"`
}

// TableName keeps the legacy singular table name.
func (User) TableName() string { return "Utilisateur" }
