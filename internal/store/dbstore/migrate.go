package dbstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/familia-santos/aurora-site/internal/db/models"
)

// OutcomeKind classifies what a legacy-file migration did.
type OutcomeKind int

const (
	// OutcomeSeeded means the table was empty and rows were imported from the legacy JSON file.
	OutcomeSeeded OutcomeKind = iota
	// OutcomeTableNotEmpty means the table already had rows; migration never merges or overwrites.
	OutcomeTableNotEmpty
	// OutcomeNoLegacyFile means there was nothing to migrate.
	OutcomeNoLegacyFile
	// OutcomeParseError means a legacy file exists but could not be parsed; the table stays empty.
	OutcomeParseError
)

// Outcome reports the result of migrating one collection, so the
// daemon can tell "no legacy file" apart from "legacy file corrupt"
// instead of swallowing both.
type Outcome struct {
	Collection string
	Kind       OutcomeKind
	Rows       int64
	Err        error
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSeeded:
		return "seeded from legacy file"
	case OutcomeTableNotEmpty:
		return "table not empty, skipped"
	case OutcomeNoLegacyFile:
		return "no legacy file"
	case OutcomeParseError:
		return "legacy file unreadable"
	}

	return "unknown"
}

// Migrator seeds empty sqlite tables from the legacy JSON collection
// files once at startup. It is a one-way, one-shot bridge: a non-empty
// table is never touched.
type Migrator struct {
	db      *gorm.DB
	dataDir string
}

// NewMigrator creates a Migrator reading legacy files from dataDir.
func NewMigrator(db *gorm.DB, dataDir string) *Migrator {
	return &Migrator{db: db, dataDir: dataDir}
}

// Run migrates all three collections and returns one outcome each.
func (m *Migrator) Run() []Outcome {
	return []Outcome{
		m.MigrateGifts(),
		m.MigrateRSVPs(),
		m.MigrateSupporters(),
	}
}

// MigrateGifts seeds the gifts table from gifts.json, preserving ids.
func (m *Migrator) MigrateGifts() Outcome {
	return seedIfEmpty[models.Gift](m, "gifts", func(g *models.Gift) {
		if !g.Claimed {
			g.ClaimedBy = nil
			g.ClaimedByPhoto = nil
		}
	})
}

// MigrateRSVPs seeds the rsvps table from rsvps.json. Legacy rsvp
// entries carry no id; autoincrement assigns fresh ones.
func (m *Migrator) MigrateRSVPs() Outcome {
	return seedIfEmpty[models.RSVP](m, "rsvps", func(r *models.RSVP) {
		if r.CreatedAt == "" {
			r.CreatedAt = models.NowISO()
		}
	})
}

// MigrateSupporters seeds the supporters table from supporters.json, preserving ids.
func (m *Migrator) MigrateSupporters() Outcome {
	return seedIfEmpty[models.Supporter](m, "supporters", nil)
}

func seedIfEmpty[T any](m *Migrator, name string, fixup func(*T)) Outcome {
	out := Outcome{Collection: name}

	var count int64
	if err := m.db.Table(name).Count(&count).Error; err != nil {
		out.Kind = OutcomeParseError
		out.Err = err

		return out
	}

	if count > 0 {
		out.Kind = OutcomeTableNotEmpty
		out.Rows = count

		return out
	}

	raw, err := os.ReadFile(filepath.Join(m.dataDir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			out.Kind = OutcomeNoLegacyFile
		} else {
			out.Kind = OutcomeParseError
			out.Err = err
		}

		return out
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		out.Kind = OutcomeParseError
		out.Err = err

		return out
	}

	for i := range items {
		if fixup != nil {
			fixup(&items[i])
		}

		if err := m.db.Create(&items[i]).Error; err != nil {
			out.Kind = OutcomeParseError
			out.Err = err

			return out
		}

		out.Rows++
	}

	out.Kind = OutcomeSeeded

	return out
}
