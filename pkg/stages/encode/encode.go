// Package encode implements the PNG encoding and publishing stage.
package encode

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
)

// TempPattern names the per-asset scratch directory created next to the output.
const TempPattern = ".storeshots-*"

// Stage encodes the finished image and publishes it at the output path.
// The file is written into a scratch directory first and renamed into
// place, so a failed asset never leaves a partial file behind.
type Stage struct {
	renderer ports.Renderer
	fs       ports.FileSystem
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		fs:       fs,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes input.Image as PNG and writes it to input.OutputPath.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (result pipeline.EncodeResult, err error) {
	log := ports.LoggerFor(ctx, s.logger)
	if input.Image == nil {
		return result, fmt.Errorf("%w: no image to encode", pipeline.ErrRasterEngine)
	}
	if input.OutputPath == "" {
		return result, fmt.Errorf("%w: output path is required", pipeline.ErrInvalidRequest)
	}

	data, err := s.renderer.EncodeImage(input.Image, ports.FormatPNG, 0)
	if err != nil {
		return result, fmt.Errorf("%w: encode png: %v", pipeline.ErrRasterEngine, err)
	}

	select {
	case <-ctx.Done():
		return result, ctx.Err()
	default:
	}

	dir := filepath.Dir(input.OutputPath)
	if err := s.fs.MkdirAll(dir); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}

	tmpDir, err := s.fs.MkdirTemp(dir, TempPattern)
	if err != nil {
		return result, fmt.Errorf("create temp directory: %w", err)
	}
	defer func() {
		if rmErr := s.fs.RemoveAll(tmpDir); rmErr != nil {
			log.Warn("Failed to remove temp directory %s: %s", tmpDir, rmErr)
		}
	}()

	tmpPath := filepath.Join(tmpDir, filepath.Base(input.OutputPath))
	if err := s.fs.WriteFile(tmpPath, data); err != nil {
		return result, fmt.Errorf("write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpPath, input.OutputPath); err != nil {
		return result, fmt.Errorf("publish %s: %w", input.OutputPath, err)
	}

	b := input.Image.Bounds()
	log.Debug("Wrote %s (%dx%d, %d bytes)", input.OutputPath, b.Dx(), b.Dy(), len(data))

	return pipeline.EncodeResult{
		Path:     input.OutputPath,
		Width:    b.Dx(),
		Height:   b.Dy(),
		FileSize: int64(len(data)),
	}, nil
}
