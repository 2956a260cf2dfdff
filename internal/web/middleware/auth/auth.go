// Package auth implements the session checks guarding the admin area.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/familia-santos/aurora-site/internal/web/session"
)

const (
	// PanelPath is the path prefix of the static admin pages.
	PanelPath = "/painel"

	// AccessPath is the login page visitors are redirected to.
	AccessPath = "/access/familia-santos"
)

// PanelGate is a Fiber middleware that redirects anonymous visitors of
// the admin pages to the access page.
func PanelGate(c *fiber.Ctx) error {
	originalURL := strings.ToLower(c.OriginalURL())
	if !strings.HasPrefix(originalURL, PanelPath) {
		return c.Next()
	}

	if !IsAdmin(c) {
		return c.Redirect(AccessPath)
	}

	return c.Next()
}

// RequireAdmin guards the admin-only API routes. It answers 401 JSON
// instead of redirecting.
func RequireAdmin(c *fiber.Ctx) error {
	if !IsAdmin(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	return c.Next()
}

// IsAdmin checks the session cookie against the server-side store.
func IsAdmin(c *fiber.Ctx) bool {
	cookie := c.Cookies(session.CookieName)
	if cookie == "" {
		return false
	}

	sessData := new(session.Data)
	if err := sessData.Read(cookie); err != nil {
		return false
	}

	return sessData.Admin
}
