// Package daemon wires the stores, the registry and the web service
// into one runnable unit.
package daemon

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	bboltstore "github.com/gofiber/storage/bbolt/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/familia-santos/aurora-site/internal/blob"
	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/logger"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/store"
	"github.com/familia-santos/aurora-site/internal/store/dbstore"
	"github.com/familia-santos/aurora-site/internal/store/jsonstore"
	"github.com/familia-santos/aurora-site/internal/web"
	"github.com/familia-santos/aurora-site/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(d.webService.Addr())
}

// New creates a new Daemon instance with the provided configuration.
// Store construction, schema migration and legacy-file seeding all
// happen here, once, instead of hiding behind a first-call side effect.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}

	stores, err := buildStores(cfg)
	if err != nil {
		return nil, err
	}

	blobs := blob.New(cfg.Webserver.UploadDir)
	reg := registry.New(stores, blobs)

	// session storage lives in its own single file next to the data
	sessionStorage := bboltstore.New(bboltstore.Config{
		Database: cfg.Webserver.SessionPath,
		Bucket:   "sessions",
	})

	session.Init(sessionStorage)

	log.Info().
		Str("mode", cfg.Store.Mode).
		Str("dataDir", cfg.Store.DataDir).
		Msg("store ready")

	return &Daemon{
		webService: web.New(cfg, reg),
	}, nil
}

// buildStores selects the persistence backend from the configuration.
func buildStores(cfg *config.Config) (store.Set, error) {
	if cfg.Store.Mode == config.StoreModeFile {
		return jsonstore.New(cfg.Store.DataDir), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Store.SQLitePath), 0o750); err != nil { //nolint: mnd
		return store.Set{}, errors.Wrap(err, "failed to create database directory")
	}

	db, err := gorm.Open(sqlite.Open(cfg.Store.SQLitePath), &gorm.Config{})
	if err != nil {
		return store.Set{}, errors.Wrap(err, "failed to open database")
	}

	if err = dbstore.AutoMigrate(db); err != nil {
		return store.Set{}, errors.Wrap(err, "failed to migrate database")
	}

	// one-shot seed of empty tables from the legacy JSON files
	for _, outcome := range dbstore.NewMigrator(db, cfg.Store.DataDir).Run() {
		event := log.Info()
		if outcome.Kind == dbstore.OutcomeParseError {
			event = log.Error().Err(outcome.Err)
		}

		event.
			Str("collection", outcome.Collection).
			Int64("rows", outcome.Rows).
			Msgf("legacy migration: %s", outcome)
	}

	return dbstore.New(db), nil
}
