package ops

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"darkroom/internal/batch"
	"darkroom/internal/upscale"
)

// The service always encodes its result as WebP.
const upscaleExt = ".webp"

// RemoteUpscale sends each file to the crisp-upscale service and replaces it
// with the result. The source is deleted only after the upscaled file is
// confirmed on disk.
type RemoteUpscale struct {
	Client *upscale.Client
}

func (u *RemoteUpscale) Name() string { return "upscale" }

// Prepare aborts the batch before any network call when no token is set.
func (u *RemoteUpscale) Prepare(ctx context.Context) error {
	return u.Client.CheckToken()
}

func (u *RemoteUpscale) ProcessFile(ctx context.Context, path string) (batch.FileResult, error) {
	data, err := u.Client.Upscale(ctx, path)
	if err != nil {
		return batch.FileCompleted, err
	}

	dest := swapExt(path, upscaleExt)
	if err := writeFileAtomic(dest, data); err != nil {
		return batch.FileCompleted, err
	}

	if !strings.EqualFold(dest, path) {
		if err := os.Remove(path); err != nil {
			slog.Warn("upscaled source not removed", "file", filepath.Base(path), "err", err)
		}
	}

	return batch.FileCompleted, nil
}
