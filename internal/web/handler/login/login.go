// Package login implements the admin login and logout endpoints.
package login

import (
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/web/session"
)

const (
	// Path is the path of the login endpoint.
	Path = "/api/admin/login"

	// LogoutPath is the path of the logout endpoint.
	LogoutPath = "/api/admin/logout"
)

// Service is the login handler service.
type Service struct {
	cfg *config.Config
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *registry.Registry) error {
	if app == nil || cfg == nil {
		return errors.New("app or cfg is nil")
	}

	s.cfg = cfg

	app.Post(Path, s.Post)
	app.Post(LogoutPath, s.Logout)

	return nil
}

// Post handles the login submission, JSON or form encoded.
func (s *Service) Post(c *fiber.Ctx) error {
	password := c.FormValue("password")

	if password == "" {
		var body struct {
			Password string `json:"password"`
		}

		if err := c.BodyParser(&body); err == nil {
			password = body.Password
		}
	}

	if !s.verify(password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	sessionID := session.GenerateSessionID()
	exp := s.cfg.Webserver.Session.ExpiryTime

	adminSession := &session.Data{Admin: true}
	if err := adminSession.Write(sessionID, exp); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(exp.Seconds()),
		Path:     "/",
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.JSON(fiber.Map{"ok": true})
}

// Logout drops the server-side session and expires the cookie.
func (s *Service) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(session.CookieName); id != "" {
		_ = session.Delete(id)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"ok": true})
}

// verify compares the submitted password against the configured admin
// credential. A configured argon2id hash wins over the plain-text dev
// password; the plain-text compare keeps the legacy trim+lowercase
// behavior.
func (s *Service) verify(password string) bool {
	if s.cfg.Webserver.AdminPasswordHash != "" {
		match, err := argon2id.ComparePasswordAndHash(password, s.cfg.Webserver.AdminPasswordHash)
		if err != nil {
			log.Error().Err(err).Msg("failed to verify admin password")

			return false
		}

		return match
	}

	normalize := func(v string) string {
		return strings.ToLower(strings.TrimSpace(v))
	}

	return normalize(password) == normalize(s.cfg.Webserver.AdminPassword)
}
