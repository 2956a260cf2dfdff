package registry

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/familia-santos/aurora-site/internal/blob"
	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

// supporterCategory is the upload subdirectory for supporter files.
const supporterCategory = "supporters"

// SupporterInput is the public support payload. Photo and receipt are
// optional uploads; PhotoRef and ReceiptRef accept already-stored paths
// from JSON submissions.
type SupporterInput struct {
	Name       string `validate:"required"`
	Photo      *Upload
	Receipt    *Upload
	PhotoRef   string
	ReceiptRef string
}

// Supporters is the registry of monetary supporters.
type Supporters struct {
	store    store.Supporters
	blobs    *blob.Store
	validate *validator.Validate
}

// List returns every supporter.
func (r *Supporters) List() ([]models.Supporter, error) {
	return r.store.List()
}

// Create appends a supporter, storing the optional photo and receipt
// through the blob store.
func (r *Supporters) Create(in SupporterInput) (*models.Supporter, error) {
	if err := r.validate.Struct(in); err != nil {
		return nil, errors.Wrap(ErrValidation, err.Error())
	}

	rec := models.Supporter{
		Name:      in.Name,
		CreatedAt: models.NowISO(),
	}

	if in.PhotoRef != "" {
		rec.Photo = &in.PhotoRef
	}

	if in.ReceiptRef != "" {
		rec.Receipt = &in.ReceiptRef
	}

	if in.Photo != nil {
		res, err := r.blobs.Save(in.Photo.Data, in.Photo.Filename, supporterCategory)
		if err != nil {
			return nil, err
		}

		rec.Photo = &res.Path
	}

	if in.Receipt != nil {
		res, err := r.blobs.Save(in.Receipt.Data, in.Receipt.Filename, supporterCategory)
		if err != nil {
			return nil, err
		}

		rec.Receipt = &res.Path
	}

	return r.store.Create(rec)
}

// Delete removes a supporter by id.
func (r *Supporters) Delete(id uint64) error {
	return r.store.Delete(id)
}
