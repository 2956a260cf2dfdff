// Package session keeps the server-side admin sessions. Session ids
// are random strings handed to the browser in an http-only cookie; the
// data lives in a pluggable fiber storage backend.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/familia-santos/aurora-site/internal/uniuri"
)

// CookieName is the name of the admin session cookie.
const CookieName = "session"

// Storage is the global session storage instance.
var Storage fiber.Storage

// Data represents the session data structure.
type Data struct {
	Admin bool
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	byteData, err := Storage.Get(sessionID)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, s)
}

// Delete removes the session for the given session ID.
func Delete(sessionID string) error {
	return Storage.Delete(sessionID)
}

// Init initializes the session store with the provided storage backend.
func Init(storage fiber.Storage) {
	if storage == nil {
		panic("storage is nil")
	}

	Storage = storage
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() string {
	return uniuri.NewLen(uniuri.SessionLen)
}
