package models

// Supporter is one entry of the monetary-support registry: a name with
// an optional photo and an optional proof-of-payment receipt.
type Supporter struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Photo     *string `json:"photo,omitempty"`
	Receipt   *string `json:"receipt,omitempty"`
	CreatedAt string  `gorm:"column:createdAt;not null" json:"createdAt"`
}

// TableName overrides the gorm table name to match the legacy schema.
func (Supporter) TableName() string {
	return "supporters"
}
