// Package images exposes the static image paths below the public
// asset tree, so the admin UI can reuse an existing picture when
// creating or editing a gift.
package images

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// imageExts are the recognized raster and vector image extensions.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// List walks publicDir recursively and returns the root-relative,
// slash-separated paths of every image file, skipping dot-directories.
// The scan runs fresh on every call; it only serves the admin UI, not
// the public hot path.
func List(publicDir string) ([]string, error) {
	paths := []string{}

	err := filepath.WalkDir(publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// an unreadable subtree is treated as empty
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil //nolint: nilerr
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != publicDir {
				return filepath.SkipDir
			}

			return nil
		}

		if !imageExts[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		rel, relErr := filepath.Rel(publicDir, path)
		if relErr != nil {
			return nil //nolint: nilerr
		}

		paths = append(paths, "/"+filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
