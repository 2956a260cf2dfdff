package registry

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

// RSVPInput is the public confirmation payload. Guests counts the
// additional attendees and can not be negative.
type RSVPInput struct {
	Name    string `json:"name" validate:"required"`
	Guests  int    `json:"guests" validate:"gte=0"`
	Message string `json:"message"`
}

// RSVPs is the append-only confirmation ledger.
type RSVPs struct {
	store    store.RSVPs
	validate *validator.Validate
}

// List returns every confirmation in creation order.
func (r *RSVPs) List() ([]models.RSVP, error) {
	return r.store.List()
}

// Create appends a confirmation, assigning the server-side timestamp
// that later keys deletion.
func (r *RSVPs) Create(in RSVPInput) (*models.RSVP, error) {
	if err := r.validate.Struct(in); err != nil {
		return nil, errors.Wrap(ErrValidation, err.Error())
	}

	return r.store.Create(models.RSVP{
		Name:      in.Name,
		Guests:    in.Guests,
		Message:   in.Message,
		CreatedAt: models.NowISO(),
	})
}

// DeleteByCreatedAt removes every confirmation carrying the given
// timestamp. A key that matches nothing deletes zero rows and is not
// an error.
func (r *RSVPs) DeleteByCreatedAt(key string) (int64, error) {
	return r.store.DeleteByCreatedAt(key)
}
