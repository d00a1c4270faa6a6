package ops

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"darkroom/internal/batch"
)

// Trim crops Pixels rows off the bottom of each image, reducing the width
// symmetrically to preserve the aspect ratio. Images no taller than Pixels
// are skipped untouched.
type Trim struct {
	Pixels int
}

func (t *Trim) Name() string { return "trim" }

func (t *Trim) Prepare(ctx context.Context) error {
	if t.Pixels <= 0 {
		return fmt.Errorf("trim amount must be positive, got %d", t.Pixels)
	}
	return nil
}

func (t *Trim) ProcessFile(ctx context.Context, path string) (batch.FileResult, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return batch.FileCompleted, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if height <= t.Pixels {
		return batch.FileSkipped, nil
	}

	newHeight := height - t.Pixels
	newWidth := int(math.Round(float64(width) * float64(newHeight) / float64(height)))
	if newWidth < 1 {
		newWidth = 1
	}
	if newWidth > width {
		newWidth = width
	}
	left := (width - newWidth) / 2

	cropped := imaging.Crop(img, image.Rect(left, 0, left+newWidth, newHeight))
	if err := saveAtomic(cropped, path); err != nil {
		return batch.FileCompleted, err
	}

	return batch.FileCompleted, nil
}
