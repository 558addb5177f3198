package models

type Contact struct {
	BaseModel
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone,omitempty"`
	Favorite bool   `gorm:"default:false" json:"favorite"`
	// OwnerID records which user created the contact. Listing is not
	// scoped by owner.
	OwnerID *string `gorm:"type:uuid;index" json:"owner,omitempty"`
}
