package registry

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/familia-santos/aurora-site/internal/blob"
	"github.com/familia-santos/aurora-site/internal/db/models"
	"github.com/familia-santos/aurora-site/internal/store"
)

// giftCategory is the upload subdirectory for gift images.
const giftCategory = "gifts"

// GiftInput is the payload for creating a gift. Exactly one of Upload
// and ImageRef may be set: Upload routes a new file through the blob
// store, ImageRef references an already-existing public image path
// without copying it.
type GiftInput struct {
	Name     string `validate:"required"`
	Category string
	ImageRef string
	Upload   *Upload
}

// GiftUpdate is the payload for patching a gift. Nil fields are left
// untouched; the two optional uploads replace the gift image and the
// claimant photo respectively.
type GiftUpdate struct {
	Patch         store.GiftPatch
	ImageUpload   *Upload
	ClaimantPhoto *Upload
}

// Gifts enforces the claim rules of the gift registry.
type Gifts struct {
	store    store.Gifts
	blobs    *blob.Store
	validate *validator.Validate
}

// List returns every gift.
func (r *Gifts) List() ([]models.Gift, error) {
	return r.store.List()
}

// Create adds a gift. The image either comes from a fresh upload or is
// an existing public path stored by reference.
func (r *Gifts) Create(in GiftInput) (*models.Gift, error) {
	if err := r.validate.Struct(in); err != nil {
		return nil, errors.Wrap(ErrValidation, err.Error())
	}

	image := in.ImageRef

	if in.Upload != nil {
		res, err := r.blobs.Save(in.Upload.Data, in.Upload.Filename, giftCategory)
		if err != nil {
			return nil, err
		}

		image = res.Path
	}

	return r.store.Create(models.Gift{
		Name:     in.Name,
		Image:    image,
		Category: in.Category,
	})
}

// Update applies an admin patch. A patch that turns Claimed off always
// clears both claimant fields; a patch that turns Claimed on is routed
// through the atomic claim so a lost race surfaces as ErrAlreadyClaimed
// instead of silently overwriting the earlier claimant.
func (r *Gifts) Update(id uint64, up GiftUpdate) (*models.Gift, error) {
	patch := up.Patch

	if up.ImageUpload != nil {
		res, err := r.blobs.Save(up.ImageUpload.Data, up.ImageUpload.Filename, giftCategory)
		if err != nil {
			return nil, err
		}

		patch.Image = &res.Path
	}

	if up.ClaimantPhoto != nil {
		res, err := r.blobs.Save(up.ClaimantPhoto.Data, up.ClaimantPhoto.Filename, giftCategory)
		if err != nil {
			return nil, err
		}

		patch.ClaimedByPhoto = &res.Path
	}

	if patch.Claimed != nil && *patch.Claimed {
		return r.claimViaPatch(id, patch)
	}

	if patch.Claimed != nil && !*patch.Claimed {
		patch.ClaimedBy = nil
		patch.ClaimedByPhoto = nil
		patch.ClearClaimant = true
	}

	return r.store.Update(id, patch)
}

// claimViaPatch splits a claiming patch into the non-claim fields
// (applied first) and the atomic claim itself.
func (r *Gifts) claimViaPatch(id uint64, patch store.GiftPatch) (*models.Gift, error) {
	by := ""
	if patch.ClaimedBy != nil {
		by = *patch.ClaimedBy
	}

	photo := patch.ClaimedByPhoto

	rest := patch
	rest.Claimed = nil
	rest.ClaimedBy = nil
	rest.ClaimedByPhoto = nil

	if rest.Name != nil || rest.Image != nil || rest.Category != nil {
		if _, err := r.store.Update(id, rest); err != nil {
			return nil, err
		}
	}

	return r.store.Claim(id, by, photo)
}

// Claim marks a gift as taken by the named person.
func (r *Gifts) Claim(id uint64, by string, photo *Upload) (*models.Gift, error) {
	var photoPath *string

	if photo != nil {
		res, err := r.blobs.Save(photo.Data, photo.Filename, giftCategory)
		if err != nil {
			return nil, err
		}

		photoPath = &res.Path
	}

	return r.store.Claim(id, by, photoPath)
}

// Release clears a claim and both claimant fields unconditionally.
func (r *Gifts) Release(id uint64) (*models.Gift, error) {
	return r.store.Release(id)
}

// Delete removes an unclaimed gift; deleting a claimed gift fails with
// store.ErrGiftClaimed.
func (r *Gifts) Delete(id uint64) error {
	return r.store.Delete(id)
}
