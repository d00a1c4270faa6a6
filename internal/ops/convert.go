package ops

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"darkroom/internal/batch"
	"darkroom/pkg/imgutil"
)

// Convert rewrites each file in the target format at a path with the swapped
// extension, then deletes the source when the two paths differ.
type Convert struct {
	Pair Pair
}

func (c *Convert) Name() string { return "convert" }

func (c *Convert) Prepare(ctx context.Context) error { return nil }

func (c *Convert) ProcessFile(ctx context.Context, path string) (batch.FileResult, error) {
	kind, err := imgutil.SniffFile(path)
	if err != nil {
		return batch.FileCompleted, err
	}
	if kind == imgutil.KindUnknown {
		// Not a decodable image despite the extension; leave it alone.
		return batch.FileSkipped, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return batch.FileCompleted, err
	}

	dest := swapExt(path, c.Pair.TargetExt)
	if err := saveAtomic(img, dest); err != nil {
		return batch.FileCompleted, err
	}

	if !strings.EqualFold(dest, path) {
		if err := os.Remove(path); err != nil {
			slog.Warn("converted source not removed", "file", filepath.Base(path), "err", err)
		}
	}

	return batch.FileCompleted, nil
}
