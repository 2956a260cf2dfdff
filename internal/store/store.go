// Package store defines the persistence contract shared by the file
// and the sqlite backends. The business-rule layer is written against
// these interfaces only, so the backend is selectable by configuration.
package store

import (
	"github.com/familia-santos/aurora-site/internal/db/models"
)

// GiftPatch describes a partial update of a gift. Nil fields are left
// untouched. ClearClaimant unconditionally nulls ClaimedBy and
// ClaimedByPhoto and is set by the registry whenever a patch turns
// Claimed off.
type GiftPatch struct {
	Name           *string
	Image          *string
	Category       *string
	Claimed        *bool
	ClaimedBy      *string
	ClaimedByPhoto *string
	ClearClaimant  bool
}

// Gifts persists the gift registry collection.
//
// Every mutation is durable before the call returns. Claim is atomic:
// of two concurrent claims on the same unclaimed gift exactly one
// succeeds, the other gets ErrAlreadyClaimed.
type Gifts interface {
	List() ([]models.Gift, error)
	Get(id uint64) (*models.Gift, error)
	Create(gift models.Gift) (*models.Gift, error)
	Update(id uint64, patch GiftPatch) (*models.Gift, error)
	Delete(id uint64) error
	Claim(id uint64, by string, photo *string) (*models.Gift, error)
	Release(id uint64) (*models.Gift, error)
}

// RSVPs persists the append-only RSVP ledger. Deletion is keyed by the
// CreatedAt timestamp; deleting a key that matches nothing is not an
// error and reports zero deleted rows.
type RSVPs interface {
	List() ([]models.RSVP, error)
	Create(rsvp models.RSVP) (*models.RSVP, error)
	DeleteByCreatedAt(key string) (int64, error)
}

// Supporters persists the supporter registry.
type Supporters interface {
	List() ([]models.Supporter, error)
	Create(supporter models.Supporter) (*models.Supporter, error)
	Delete(id uint64) error
}

// Set bundles the three collection stores of one backend.
type Set struct {
	Gifts      Gifts
	RSVPs      RSVPs
	Supporters Supporters
}
