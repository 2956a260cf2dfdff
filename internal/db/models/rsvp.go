package models

import "time"

// RSVP is one confirmation from the public form. There is no update
// operation; entries are appended by visitors and deleted by the admin
// keyed by CreatedAt.
type RSVP struct {
	// ID is the surrogate primary key. It is not part of the wire format;
	// the public contract keys deletion by CreatedAt.
	ID        uint64 `gorm:"primaryKey" json:"-"`
	Name      string `gorm:"not null" json:"name"`
	Guests    int    `gorm:"not null" json:"guests"`
	Message   string `json:"message"`
	CreatedAt string `gorm:"column:createdAt;not null" json:"createdAt"`
}

// TableName overrides the gorm table name to match the legacy schema.
func (RSVP) TableName() string {
	return "rsvps"
}

// NowISO returns the current UTC time in the ISO-8601 millisecond
// format the legacy data files use.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
