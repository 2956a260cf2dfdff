package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	bboltstore "github.com/gofiber/storage/bbolt/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familia-santos/aurora-site/internal/web/session"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	session.Init(bboltstore.New(bboltstore.Config{
		Database: filepath.Join(t.TempDir(), "sessions.db"),
	}))

	app := fiber.New()
	app.Use(PanelGate)

	handler := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", handler)
	app.Get(PanelPath, handler)
	app.Get(PanelPath+"/gifts", handler)
	app.Get("/api/protected", RequireAdmin, handler)

	return app
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()

	id := session.GenerateSessionID()
	require.NoError(t, (&session.Data{Admin: true}).Write(id, time.Minute))

	return &http.Cookie{Name: session.CookieName, Value: id}
}

func get(t *testing.T, app *fiber.App, target string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

func TestPanelGate(t *testing.T) {
	app := newTestApp(t)

	testCases := []struct {
		name         string
		target       string
		cookie       *http.Cookie
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "public page passes through",
			target:     "/",
			wantStatus: http.StatusOK,
		},
		{
			name:         "anonymous panel visit redirects",
			target:       PanelPath,
			wantStatus:   http.StatusFound,
			wantLocation: AccessPath,
		},
		{
			name:         "panel subpage redirects too",
			target:       PanelPath + "/gifts",
			wantStatus:   http.StatusFound,
			wantLocation: AccessPath,
		},
		{
			name:         "bogus cookie redirects",
			target:       PanelPath,
			cookie:       &http.Cookie{Name: session.CookieName, Value: "forged"},
			wantStatus:   http.StatusFound,
			wantLocation: AccessPath,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, app, tc.target, tc.cookie)

			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantLocation, resp.Header.Get("Location"))
		})
	}
}

func TestPanelGateAdmin(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, PanelPath, adminCookie(t))

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	resp = get(t, app, "/api/protected", adminCookie(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}
