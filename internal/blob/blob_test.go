package blob

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes encodes a small solid-color PNG for the normalization tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestSaveNormalizesRasterImage(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	res, err := s.Save(pngBytes(t), "foto do presente.png", "gifts")
	require.NoError(t, err)
	assert.True(t, res.Normalized)

	// timestamped, sanitized and rewritten to .jpg
	assert.Regexp(t, regexp.MustCompile(`^/uploads/gifts/\d+-foto_do_presente\.jpg$`), res.Path)

	onDisk := filepath.Join(dir, strings.TrimPrefix(res.Path, "/uploads/"))

	raw, err := os.ReadFile(onDisk)
	require.NoError(t, err)

	// JPEG SOI marker
	require.True(t, len(raw) > 2)
	assert.Equal(t, []byte{0xff, 0xd8}, raw[:2])
}

func TestSaveKeepsRawBytesForNonImages(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	payload := []byte("%PDF-1.4 not an image")

	res, err := s.Save(payload, "comprovante!.pdf", "supporters")
	require.NoError(t, err)
	assert.False(t, res.Normalized)

	// the original extension stays and unsafe characters become "_"
	assert.Regexp(t, regexp.MustCompile(`^/uploads/supporters/\d+-comprovante_\.pdf$`), res.Path)

	onDisk := filepath.Join(dir, strings.TrimPrefix(res.Path, "/uploads/"))

	raw, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
}

func TestSaveCreatesCategoryDir(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	_, err := s.Save([]byte("x"), "a.bin", "gifts")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "gifts"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStripExt(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{".hidden", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, stripExt(tc.in), tc.in)
	}
}

func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"simple.jpg", "simple.jpg"},
		{"with space.jpg", "with_space.jpg"},
		{"path/../escape.jpg", "path_.._escape.jpg"},
		{"ok-name_1.2.jpg", "ok-name_1.2.jpg"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, unsafeChars.ReplaceAllString(tc.in, "_"), tc.in)
	}
}
