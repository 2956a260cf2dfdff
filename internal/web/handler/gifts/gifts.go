// Package gifts implements the gift registry endpoints.
package gifts

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/store"
	"github.com/familia-santos/aurora-site/internal/web/handler"
	"github.com/familia-santos/aurora-site/internal/web/middleware/auth"
)

const (
	// Path is the collection path of the gift registry.
	Path = "/api/gifts"
)

// Service is the gifts handler service.
type Service struct {
	reg *registry.Registry
}

// Handler is the gifts handler.
var Handler = Service{}

// Init initializes the gifts handler. Listing and claiming (via PUT)
// are public; creating and deleting are admin actions.
func (s *Service) Init(app *fiber.App, cfg *config.Config, reg *registry.Registry) error {
	if app == nil || cfg == nil || reg == nil {
		return errors.New("app, cfg or registry is nil")
	}

	s.reg = reg

	app.Get(Path, s.List)
	app.Post(Path, auth.RequireAdmin, s.Post)
	app.Put(Path+"/:id", s.Put)
	app.Delete(Path+"/:id", auth.RequireAdmin, s.Delete)

	return nil
}

// List returns every gift.
func (s *Service) List(c *fiber.Ctx) error {
	items, err := s.reg.Gifts.List()
	if err != nil {
		return handler.StoreError(c, err)
	}

	return c.JSON(items)
}

// Post creates a gift from a JSON body or a multipart form with an
// image upload.
func (s *Service) Post(c *fiber.Ctx) error {
	var in registry.GiftInput

	if handler.IsMultipart(c) {
		in.Name = c.FormValue("name")
		in.Category = c.FormValue("category")

		upload, err := handler.FormUpload(c, "image")
		if err != nil {
			return handler.StoreError(c, err)
		}

		in.Upload = upload
	} else {
		var body struct {
			Name     string `json:"name"`
			Image    string `json:"image"`
			Category string `json:"category"`
		}

		if err := c.BodyParser(&body); err != nil {
			return handler.StoreError(c, registry.ErrValidation)
		}

		in.Name = body.Name
		in.Category = body.Category
		in.ImageRef = body.Image
	}

	created, err := s.reg.Gifts.Create(in)
	if err != nil {
		return handler.StoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// giftPatchBody distinguishes absent fields from zero values.
type giftPatchBody struct {
	Name           *string `json:"name"`
	Image          *string `json:"image"`
	Category       *string `json:"category"`
	Claimed        *bool   `json:"claimed"`
	ClaimedBy      *string `json:"claimedBy"`
	ClaimedByPhoto *string `json:"claimedByPhoto"`
}

// Put patches a gift. The public claim action arrives here as a patch
// with claimed=true; a claim that lost the race answers 409.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.StoreError(c, store.ErrNotFound)
	}

	var up registry.GiftUpdate

	if handler.IsMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return handler.StoreError(c, registry.ErrValidation)
		}

		if v, ok := formValue(form.Value, "name"); ok {
			up.Patch.Name = &v
		}

		if v, ok := formValue(form.Value, "category"); ok {
			up.Patch.Category = &v
		}

		if v, ok := formValue(form.Value, "claimed"); ok {
			claimed := v == "true"
			up.Patch.Claimed = &claimed
		}

		if v, ok := formValue(form.Value, "claimedBy"); ok {
			up.Patch.ClaimedBy = &v
		}

		if up.ImageUpload, err = handler.FormUpload(c, "image"); err != nil {
			return handler.StoreError(c, err)
		}

		if up.ClaimantPhoto, err = handler.FormUpload(c, "claimedByPhoto"); err != nil {
			return handler.StoreError(c, err)
		}
	} else {
		var body giftPatchBody
		if err := c.BodyParser(&body); err != nil {
			return handler.StoreError(c, registry.ErrValidation)
		}

		up.Patch = store.GiftPatch{
			Name:           body.Name,
			Image:          body.Image,
			Category:       body.Category,
			Claimed:        body.Claimed,
			ClaimedBy:      body.ClaimedBy,
			ClaimedByPhoto: body.ClaimedByPhoto,
		}
	}

	updated, err := s.reg.Gifts.Update(id, up)
	if err != nil {
		return handler.StoreError(c, err)
	}

	return c.JSON(updated)
}

// Delete removes an unclaimed gift; a claimed gift answers 409.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.StoreError(c, store.ErrNotFound)
	}

	if err := s.reg.Gifts.Delete(id); err != nil {
		return handler.StoreError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

func formValue(values map[string][]string, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}

	return v[0], true
}
