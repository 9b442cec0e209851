package model

// Image is an illustration attached to a project. URL is either an absolute
// external asset (http/https) or a site-relative upload path. At most one
// image per project is flagged main by convention; the store does not
// enforce it.
type Image struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProjetID  uint   `json:"projet_id" gorm:"column:projet_id;not null;index"`
	URL       string `json:"url" gorm:"size:512;not null"`
	IsMain    bool   `json:"isMain" gorm:"column:isMain;default:false"`
	IsPreview bool   `json:"isPreview" gorm:"column:isPreview;default:false"`
}

// TableName keeps the legacy singular table name.
func (Image) TableName() string { return "Image" }
