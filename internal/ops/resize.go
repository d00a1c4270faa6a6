package ops

import (
	"context"
	"fmt"

	"github.com/disintegration/imaging"

	"darkroom/internal/batch"
)

// Resize stretches each image to exactly Width by Height, ignoring the
// original aspect ratio, overwriting in place.
type Resize struct {
	Width  int
	Height int
}

func (r *Resize) Name() string { return "resize" }

func (r *Resize) Prepare(ctx context.Context) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("target dimensions must be positive, got %dx%d", r.Width, r.Height)
	}
	return nil
}

func (r *Resize) ProcessFile(ctx context.Context, path string) (batch.FileResult, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return batch.FileCompleted, err
	}

	stretched := imaging.Resize(img, r.Width, r.Height, imaging.Lanczos)
	if err := saveAtomic(stretched, path); err != nil {
		return batch.FileCompleted, err
	}

	return batch.FileCompleted, nil
}
