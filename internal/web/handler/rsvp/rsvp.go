// Package rsvp implements the RSVP ledger endpoints.
package rsvp

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/web/handler"
	"github.com/familia-santos/aurora-site/internal/web/middleware/auth"
)

const (
	// Path is the collection path of the RSVP ledger.
	Path = "/api/rsvp"
)

// Service is the rsvp handler service.
type Service struct {
	reg *registry.Registry
}

// Handler is the rsvp handler.
var Handler = Service{}

// Init initializes the rsvp handler. Submitting is public; deletion is
// an admin action.
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

// List returns every confirmation in creation order.
func (s *Service) List(c *fiber.Ctx) error {
	items, err := s.reg.RSVPs.List()
	if err != nil {
		return handler.StoreError(c, err)
	}

	return c.JSON(items)
}

// Post appends a confirmation from the public form.
func (s *Service) Post(c *fiber.Ctx) error {
	var in registry.RSVPInput
	if err := c.BodyParser(&in); err != nil {
		return handler.StoreError(c, registry.ErrValidation)
	}

	created, err := s.reg.RSVPs.Create(in)
	if err != nil {
		return handler.StoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Delete removes confirmations by their createdAt key. A key that
// matches nothing still answers ok, mirroring the legacy contract.
func (s *Service) Delete(c *fiber.Ctx) error {
	var body struct {
		CreatedAt string `json:"createdAt"`
	}

	if err := c.BodyParser(&body); err != nil {
		return handler.StoreError(c, registry.ErrValidation)
	}

	if _, err := s.reg.RSVPs.DeleteByCreatedAt(body.CreatedAt); err != nil {
		return handler.StoreError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
