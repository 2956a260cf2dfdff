// Package dbstore implements the store contract on a single-file
// sqlite database through gorm. Ids come from sqlite autoincrement, so
// id assignment and row insertion are one atomic step; the claim check
// runs inside a transaction.
package dbstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

// New creates the sqlite-backed store set on an open gorm handle. The
// schema is expected to be migrated already (see daemon.New).
func New(db *gorm.DB) store.Set {
	return store.Set{
		Gifts:      &giftStore{db: db},
		RSVPs:      &rsvpStore{db: db},
		Supporters: &supporterStore{db: db},
	}
}

// AutoMigrate creates the three collection tables idempotently.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Gift{},
		&models.RSVP{},
		&models.Supporter{},
	)
}

// notFound maps gorm's record-not-found to the store sentinel.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}

	return err
}
