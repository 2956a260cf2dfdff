// Package supporters implements the supporter registry endpoints.
package supporters

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/web/handler"
	"github.com/familia-santos/aurora-site/internal/web/middleware/auth"
)

const (
	// Path is the collection path of the supporter registry.
	Path = "/api/supporters"
)

// Service is the supporters handler service.
type Service struct {
	reg *registry.Registry
}

// Handler is the supporters handler.
var Handler = Service{}

// Init initializes the supporters handler. Submitting is public;
// deletion is an admin action.
func (s *Service) Init(app *fiber.App, cfg *config.Config, reg *registry.Registry) error {
	if app == nil || cfg == nil || reg == nil {
		return errors.New("app, cfg or registry is nil")
	}

	s.reg = reg

	app.Get(Path, s.List)
	app.Post(Path, s.Post)
	app.Delete(Path, auth.RequireAdmin, s.Delete)

	return nil
}

// List returns every supporter.
func (s *Service) List(c *fiber.Ctx) error {
	items, err := s.reg.Supporters.List()
	if err != nil {
		return handler.StoreError(c, err)
	}

	return c.JSON(items)
}

// Post appends a supporter. The multipart form keeps the legacy field
// aliases (supportName/name, supportPhoto/photo, receipt/comprovante).
func (s *Service) Post(c *fiber.Ctx) error {
	var in registry.SupporterInput

	if handler.IsMultipart(c) {
		in.Name = c.FormValue("supportName")
		if in.Name == "" {
			in.Name = c.FormValue("name")
		}

		var err error

		if in.Photo, err = handler.FormUpload(c, "supportPhoto", "photo"); err != nil {
			return handler.StoreError(c, err)
		}

		if in.Receipt, err = handler.FormUpload(c, "receipt", "comprovante"); err != nil {
			return handler.StoreError(c, err)
		}
	} else {
		var body struct {
			Name    string `json:"name"`
			Photo   string `json:"photo"`
			Receipt string `json:"receipt"`
		}

		if err := c.BodyParser(&body); err != nil {
			return handler.StoreError(c, registry.ErrValidation)
		}

		in.Name = body.Name
		in.PhotoRef = body.Photo
		in.ReceiptRef = body.Receipt
	}

	created, err := s.reg.Supporters.Create(in)
	if err != nil {
		return handler.StoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Delete removes a supporter by id from the request body.
func (s *Service) Delete(c *fiber.Ctx) error {
	var body struct {
		ID uint64 `json:"id"`
	}

	if err := c.BodyParser(&body); err != nil || body.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_id"})
	}

	if err := s.reg.Supporters.Delete(body.ID); err != nil {
		return handler.StoreError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
