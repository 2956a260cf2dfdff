package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownStoreMode error if config store.mode is not "file" or "sqlite".
	ErrUnknownStoreMode = errors.New(`toml config store.mode must be "file" or "sqlite"`)

	// ErrNoAdminPassword error if neither webserver.adminPassword nor webserver.adminPasswordHash is set.
	ErrNoAdminPassword = errors.New("toml config webserver.adminPassword or webserver.adminPasswordHash must be set")
)
