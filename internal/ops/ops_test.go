package ops

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeImage(t *testing.T, path string, width, height int, fill color.NRGBA) {
	t.Helper()
	img := imaging.New(width, height, fill)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("write fixture %s: %v", filepath.Base(path), err)
	}
}

func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", filepath.Base(path), err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func readBytes(t *testing.T, path string) []byte {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", filepath.Base(path), err)
	}
	return raw
}

var (
	blue = color.NRGBA{B: 255, A: 255}
	red  = color.NRGBA{R: 255, A: 255}
)
