// Package registry implements the business rules of the three record
// collections on top of the store contract, independent of which
// backend persists them.
package registry

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/familia-santos/aurora-site/internal/blob"
	"github.com/familia-santos/aurora-site/internal/store"
)

// ErrValidation wraps payload validation failures so handlers can map
// them to an unprocessable-entity response.
var ErrValidation = errors.New("invalid payload")

// Upload carries one uploaded file on its way to the blob store.
type Upload struct {
	Data     []byte
	Filename string
}

// Registry bundles the three record services over one backend.
type Registry struct {
	Gifts      *Gifts
	RSVPs      *RSVPs
	Supporters *Supporters
}

// New wires the record services to a store set and the blob store.
func New(stores store.Set, blobs *blob.Store) *Registry {
	v := validator.New()

	return &Registry{
		Gifts:      &Gifts{store: stores.Gifts, blobs: blobs, validate: v},
		RSVPs:      &RSVPs{store: stores.RSVPs, validate: v},
		Supporters: &Supporters{store: stores.Supporters, blobs: blobs, validate: v},
	}
}
