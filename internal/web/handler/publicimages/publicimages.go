// Package publicimages exposes the static image index for the admin UI.
package publicimages

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/images"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/web/middleware/auth"
)

const (
	// Path is the path of the public image index.
	Path = "/api/public-images"
)

// Service is the public image index handler service.
type Service struct {
	cfg *config.Config
}

// Handler is the public image index handler.
var Handler = Service{}

// Init initializes the public image index handler. The index only
// serves the admin UI and is gated accordingly.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *registry.Registry) error {
	if app == nil || cfg == nil {
		return errors.New("app or cfg is nil")
	}

	s.cfg = cfg

	app.Get(Path, auth.RequireAdmin, s.Get)

	return nil
}

// Get scans the public asset tree fresh on every call and returns the
// image paths. A failed scan degrades to an empty list, matching the
// legacy behavior.
func (s *Service) Get(c *fiber.Ctx) error {
	paths, err := images.List(s.cfg.Webserver.PublicDir)
	if err != nil {
		log.Error().Err(err).Str("dir", s.cfg.Webserver.PublicDir).Msg("public image scan failed")

		return c.JSON([]string{})
	}

	return c.JSON(paths)
}
