// Package blob writes uploaded binary content below the uploads
// directory and hands back the web path it is served under. Raster
// images are normalized on the way in; anything the decoder rejects is
// stored verbatim.
package blob

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const (
	dirPerm  = 0o750
	filePerm = 0o640

	// jpegQuality is the fixed re-encode quality for normalized images.
	jpegQuality = 82
)

// unsafeChars matches every character that is replaced by "_" in
// uploaded file names.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Result reports where an upload ended up and whether it went through
// image normalization or the raw-bytes fallback.
type Result struct {
	// Path is the root-relative web path of the stored file.
	Path string
	// Normalized is true when the payload was re-encoded as JPEG,
	// false when the original bytes were stored verbatim.
	Normalized bool
}

// Store writes uploads below a base directory, one subdirectory per
// category (gifts, supporters).
type Store struct {
	baseDir string
}

// New creates a blob store rooted at baseDir (the directory served
// under /uploads).
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save stores data under a collision-resistant name derived from the
// upload time and the sanitized original name. Raster payloads are
// auto-oriented per EXIF and re-encoded as JPEG at fixed quality, with
// the extension rewritten to .jpg; animated sources are flattened to
// their first frame. A failed normalization is not an error: the
// original bytes are stored under the timestamped name instead.
//
// Uploads within the same millisecond with the same sanitized name
// collide; an accepted limitation at this scale.
func (s *Store) Save(data []byte, originalName, category string) (Result, error) {
	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return Result{}, errors.Wrap(err, "failed to create upload directory")
	}

	base := unsafeChars.ReplaceAllString(originalName, "_")
	stamp := time.Now().UnixMilli()

	if encoded, ok := normalize(data); ok {
		name := fmt.Sprintf("%d-%s.jpg", stamp, stripExt(base))
		if err := os.WriteFile(filepath.Join(dir, name), encoded, filePerm); err != nil {
			return Result{}, errors.Wrap(err, "failed to write upload")
		}

		return Result{Path: webPath(category, name), Normalized: true}, nil
	}

	name := fmt.Sprintf("%d-%s", stamp, base)
	if err := os.WriteFile(filepath.Join(dir, name), data, filePerm); err != nil {
		return Result{}, errors.Wrap(err, "failed to write upload")
	}

	return Result{Path: webPath(category, name), Normalized: false}, nil
}

// normalize decodes and re-encodes a raster payload. ok is false for
// anything that is not a decodable image.
func normalize(data []byte) (encoded []byte, ok bool) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, false
	}

	return buf.Bytes(), true
}

// stripExt drops the last extension, matching the legacy naming of
// normalized uploads.
func stripExt(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		return strings.TrimSuffix(name, ext)
	}

	return name
}

func webPath(category, name string) string {
	return "/uploads/" + category + "/" + name
}
