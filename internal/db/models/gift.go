// Package models contains database model definitions.
package models

// Gift represents one entry of the wedding gift registry.
// A gift can be claimed by a visitor, which marks it as taken and
// records who took it. A claimed gift can not be deleted until the
// claim is released.
type Gift struct {
	// ID is the unique identifier for the gift. Never reused, even after deletion.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name of the gift.
	Name string `gorm:"not null" json:"name"`
	// Image is the root-relative path of the gift picture, empty if none.
	Image string `json:"image"`
	// Category is a free-text grouping; consumers treat an empty value as "Outros".
	Category string `json:"category"`
	// Claimed marks the gift as taken.
	Claimed bool `gorm:"not null;default:false" json:"claimed"`
	// ClaimedBy is the name of the person who claimed the gift, nil while unclaimed.
	ClaimedBy *string `gorm:"column:claimedBy" json:"claimedBy,omitempty"`
	// ClaimedByPhoto is the path of the claimant photo, nil while unclaimed.
	ClaimedByPhoto *string `gorm:"column:claimedByPhoto" json:"claimedByPhoto,omitempty"`
}

// TableName overrides the gorm table name to match the legacy schema.
func (Gift) TableName() string {
	return "gifts"
}
