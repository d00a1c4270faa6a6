// Package ops implements the batch image operations: format conversion,
// watermark-strip trimming, resizing, watermark compositing, and remote
// upscaling.
package ops

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// WebP sources decode through image.Decode once registered.
	_ "golang.org/x/image/webp"
)

// Pair describes one supported format conversion.
type Pair struct {
	SourceLabel   string
	SourcePattern string
	TargetLabel   string
	TargetExt     string
}

// ConversionPairs is the fixed set of convertible format pairs. WebP appears
// only as a source: there is no WebP encoder in the stack.
var ConversionPairs = []Pair{
	{SourceLabel: "WebP", SourcePattern: "*.webp", TargetLabel: "PNG", TargetExt: ".png"},
	{SourceLabel: "WebP", SourcePattern: "*.webp", TargetLabel: "JPEG", TargetExt: ".jpg"},
	{SourceLabel: "PNG", SourcePattern: "*.png", TargetLabel: "JPEG", TargetExt: ".jpg"},
	{SourceLabel: "JPEG", SourcePattern: "*.jpg", TargetLabel: "PNG", TargetExt: ".png"},
}

// FindPair resolves from/to format names (webp, png, jpg/jpeg) against the
// conversion table.
func FindPair(from, to string) (Pair, error) {
	for _, pair := range ConversionPairs {
		if labelMatches(pair.SourceLabel, from) && labelMatches(pair.TargetLabel, to) {
			return pair, nil
		}
	}
	return Pair{}, fmt.Errorf("unsupported conversion %q to %q", from, to)
}

func labelMatches(label, name string) bool {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch strings.ToLower(label) {
	case "jpeg":
		return name == "jpeg" || name == "jpg"
	default:
		return name == strings.ToLower(label)
	}
}

// saveAtomic encodes img in the format implied by destPath's extension,
// writing to a temp file in the destination directory and renaming over
// destPath so readers never see a partial file.
func saveAtomic(img image.Image, destPath string) error {
	destDir := filepath.Dir(destPath)

	tmpFile, err := os.CreateTemp(destDir, "darkroom-*"+filepath.Ext(destPath))
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := imaging.Encode(tmpFile, img, formatFor(destPath)); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return replaceFile(tmpPath, destPath)
}

func formatFor(path string) imaging.Format {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return imaging.PNG
	}
	return format
}

// writeFileAtomic writes raw bytes via temp-file-then-rename.
func writeFileAtomic(destPath string, data []byte) error {
	destDir := filepath.Dir(destPath)

	tmpFile, err := os.CreateTemp(destDir, "darkroom-*"+filepath.Ext(destPath))
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return replaceFile(tmpPath, destPath)
}

// replaceFile renames tmpPath over destPath, removing an existing
// destination first where the filesystem refuses to overwrite on rename.
func replaceFile(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err == nil {
		return nil
	}
	if err := os.Remove(destPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Rename(tmpPath, destPath)
}

// swapExt replaces path's extension with ext.
func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
