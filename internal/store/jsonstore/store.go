// Package jsonstore implements the store contract on one
// pretty-printed JSON array file per collection. Every mutation reads
// the whole file, rewrites it and fsyncs through os.WriteFile, which is
// O(n) per write and only acceptable at the few-hundred-record scale
// this site runs at.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/familia-santos/aurora-site/internal/store"
)

const (
	dirPerm  = 0o750
	filePerm = 0o640
)

// New creates the file-backed store set rooted at dataDir.
func New(dataDir string) store.Set {
	return store.Set{
		Gifts:      &giftStore{path: filepath.Join(dataDir, "gifts.json")},
		RSVPs:      &rsvpStore{path: filepath.Join(dataDir, "rsvps.json")},
		Supporters: &supporterStore{path: filepath.Join(dataDir, "supporters.json")},
	}
}

// readAll loads a collection file. A missing file is an empty
// collection, not an error.
func readAll[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}

		return nil, errors.Wrap(err, "failed to read collection file")
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "failed to parse collection file")
	}

	return items, nil
}

// writeAll rewrites a collection file in place, creating the data
// directory on first use.
func writeAll[T any](path string, items []T) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode collection")
	}

	return errors.Wrap(os.WriteFile(path, raw, filePerm), "failed to write collection file")
}
