// Package background implements the background stage: gradient, decorative
// curves and the optional top image.
package background

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/user/storeshots/pkg/curves"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/placement"
	"github.com/user/storeshots/pkg/ports"
)

// Stage assembles the background layer of an asset.
type Stage struct {
	renderer  ports.Renderer
	generator *curves.Generator
	logger    ports.Logger
}

// NewStage creates a new background stage.
func NewStage(renderer ports.Renderer, generator *curves.Generator, logger ports.Logger) *Stage {
	return &Stage{
		renderer:  renderer,
		generator: generator,
		logger:    logger.WithComponent("background"),
	}
}

// Execute draws the gradient, then the curves, then the top image.
// Missing curves are not fatal: the background is returned without them.
func (s *Stage) Execute(ctx context.Context, input pipeline.BackgroundInput) (pipeline.BackgroundResult, error) {
	log := ports.LoggerFor(ctx, s.logger)
	if input.Width <= 0 || input.Height <= 0 {
		return pipeline.BackgroundResult{}, fmt.Errorf("%w: background %dx%d", pipeline.ErrRasterEngine, input.Width, input.Height)
	}

	canvas := s.renderer.CreateCanvas(input.Width, input.Height, color.Transparent)
	canvas.FillGradient(input.GradientStart, input.GradientEnd, input.Direction)
	log.Debug("Gradient filled: %dx%d", input.Width, input.Height)

	overlay, paths, err := s.generator.Overlay(s.renderer, input.Width, input.Height, input.Seed, input.Orientation, input.CurveColor)
	switch {
	case errors.Is(err, curves.ErrDegenerateGeometry):
		log.Warn("Skipping decorative curves: %s", err)
	case err != nil:
		return pipeline.BackgroundResult{}, fmt.Errorf("%w: %v", pipeline.ErrRasterEngine, err)
	default:
		canvas.DrawImage(overlay, 0, 0)
		log.Debug("Curves drawn: %d paths, seed %s", len(paths), input.Seed)
	}

	if err := ctx.Err(); err != nil {
		return pipeline.BackgroundResult{}, err
	}

	var topBounds pipeline.Rectangle
	if input.TopImage != nil {
		topBounds = s.drawTopImage(log, canvas, input)
	}

	return pipeline.BackgroundResult{
		Image:          canvas.ToImage(),
		Curves:         paths,
		TopImageBounds: topBounds,
	}, nil
}

func (s *Stage) drawTopImage(log ports.Logger, canvas ports.Canvas, input pipeline.BackgroundInput) pipeline.Rectangle {
	b := input.TopImage.Bounds()
	maxW, maxH := placement.TopImageBox(input.TopPlacement, input.Width, input.TopSpaceHeight)
	w, h := placement.ScaleToFit(b.Dx(), b.Dy(), maxW, maxH)
	if w <= 0 || h <= 0 {
		log.Warn("Top image skipped: no room in %dx%d", maxW, maxH)
		return pipeline.Rectangle{}
	}
	log.Debug("Top image: %dx%d -> %dx%d (max: %dx%d)", b.Dx(), b.Dy(), w, h, maxW, maxH)

	offset := placement.TopImageOffset(input.TopPlacement, input.TopSpaceHeight, h)
	pt := placement.Place(input.Width, input.Height, w, h, placement.North, 0, offset)

	var img image.Image = input.TopImage
	if w != b.Dx() || h != b.Dy() {
		img = s.renderer.ResizeImage(img, w, h)
	}
	canvas.DrawImage(img, pt.X, pt.Y)
	return pipeline.Rectangle{X: pt.X, Y: pt.Y, Width: w, Height: h}
}
