package config

import (
	"time"

	"github.com/familia-santos/aurora-site/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Store     Store
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Store holds the record persistence settings.
type Store struct {
	Mode       string // "file" for one JSON array file per collection, "sqlite" for the single-file database
	DataDir    string // directory holding the JSON collection files (also the legacy files migrated into sqlite)
	SQLitePath string // path of the sqlite database file
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath         bool    // use clean path middleware to allow multi slash requests
	DisableRecover    bool    // disable recover middleware
	Domain            string  // domain name for the webserver
	Port              int     // listening port for the webserver
	ShutDownTime      int     // wait time for shutdown
	URL               string  // base url for the webserver
	PublicDir         string  // directory with the public static assets
	UploadDir         string  // directory uploaded blobs are written to (served under /uploads)
	AdminPassword     string  // shared admin password in plain text (dev setups only)
	AdminPasswordHash string  // argon2id hash of the shared admin password, wins over AdminPassword
	SessionPath       string  // path of the session storage file
	Session           Session // session settings
}
