// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// StoreMode values accepted for Store.Mode.
const (
	StoreModeFile   = "file"
	StoreModeSQLite = "sqlite"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv("AURORA_SITE_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge json config from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill the defaults the daemon
// needs before it can start.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	switch c.Store.Mode {
	case "":
		c.Store.Mode = StoreModeFile
	case StoreModeFile, StoreModeSQLite:
	default:
		return errors.Wrap(ErrUnknownStoreMode, invalidErrMessage)
	}

	if c.Store.DataDir == "" {
		c.Store.DataDir = "./data"
	}

	if c.Store.SQLitePath == "" {
		c.Store.SQLitePath = "./data/site.db"
	}

	if c.Webserver.PublicDir == "" {
		c.Webserver.PublicDir = "./public"
	}

	if c.Webserver.UploadDir == "" {
		c.Webserver.UploadDir = "./public/uploads"
	}

	if c.Webserver.SessionPath == "" {
		c.Webserver.SessionPath = "./data/sessions.db"
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = 7 * 24 * time.Hour
	}

	if c.Webserver.AdminPassword == "" && c.Webserver.AdminPasswordHash == "" {
		return errors.Wrap(ErrNoAdminPassword, invalidErrMessage)
	}

	return nil
}
