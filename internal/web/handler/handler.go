// Package handler holds the pieces shared by the web handler packages.
package handler

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/store"
)

const (
	// RootPath is the root path of a route group.
	RootPath = "/"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, reg *registry.Registry) error
}

// StoreError maps the store sentinels and validation failures to the
// JSON error responses of the legacy API.
func StoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
	case errors.Is(err, store.ErrGiftClaimed), errors.Is(err, store.ErrAlreadyClaimed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "claimed"})
	case errors.Is(err, registry.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "invalid_payload"})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
}

// IsMultipart reports whether the request carries a multipart form.
func IsMultipart(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get(fiber.HeaderContentType)), "multipart/form-data")
}

// FormUpload reads the first non-empty of the given multipart file
// fields into a registry upload. Nil without error when none is set.
func FormUpload(c *fiber.Ctx, names ...string) (*registry.Upload, error) {
	for _, name := range names {
		fh, err := c.FormFile(name)
		if err != nil || fh == nil || fh.Size == 0 {
			continue
		}

		f, err := fh.Open()
		if err != nil {
			return nil, errors.Wrap(err, "failed to open uploaded file")
		}

		data, err := io.ReadAll(f)
		_ = f.Close()

		if err != nil {
			return nil, errors.Wrap(err, "failed to read uploaded file")
		}

		return &registry.Upload{Data: data, Filename: fh.Filename}, nil
	}

	return nil, nil
}
