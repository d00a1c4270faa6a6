package ops

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"darkroom/internal/batch"
)

// Watermark stretches each image to Width by Height, then composites the
// watermark image at the bottom-right with "over" alpha blending. The
// watermark is downscaled to fit within the target dimensions, preserving
// its own aspect ratio; it is never upscaled.
type Watermark struct {
	Width    int
	Height   int
	MarkPath string

	mark image.Image
}

func (w *Watermark) Name() string { return "watermark" }

// Prepare loads the watermark once; a missing or undecodable watermark
// aborts the batch before any file is touched.
func (w *Watermark) Prepare(ctx context.Context) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("target dimensions must be positive, got %dx%d", w.Width, w.Height)
	}
	mark, err := imaging.Open(w.MarkPath)
	if err != nil {
		return fmt.Errorf("load watermark %q: %w", w.MarkPath, err)
	}
	w.mark = mark
	return nil
}

func (w *Watermark) ProcessFile(ctx context.Context, path string) (batch.FileResult, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return batch.FileCompleted, err
	}

	base := imaging.Resize(img, w.Width, w.Height, imaging.Lanczos)

	mark := w.mark
	mb := mark.Bounds()
	if mb.Dx() > w.Width || mb.Dy() > w.Height {
		mark = imaging.Fit(mark, w.Width, w.Height, imaging.Lanczos)
		mb = mark.Bounds()
	}

	anchor := image.Pt(w.Width-mb.Dx(), w.Height-mb.Dy())
	stamped := imaging.Overlay(base, mark, anchor, 1.0)

	if err := saveAtomic(stamped, path); err != nil {
		return batch.FileCompleted, err
	}

	return batch.FileCompleted, nil
}
