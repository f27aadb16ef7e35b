// Package composite implements the final composition stage of portrait
// screenshots.
package composite

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/placement"
	"github.com/user/storeshots/pkg/ports"
)

// Stage places the shadowed subject and the bottom logo on the background
// and resizes the result to the final resolution.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new composite stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("composite"),
	}
}

// Execute composes the layers.
//
// Layer order (bottom to top): background, subject, bottom logo. The subject
// is centered horizontally with its top edge at the top space height, leaving
// the band above it for the top image.
func (s *Stage) Execute(ctx context.Context, input pipeline.CompositeInput) (pipeline.CompositeResult, error) {
	log := ports.LoggerFor(ctx, s.logger)
	if input.Background == nil || input.Subject == nil {
		return pipeline.CompositeResult{}, fmt.Errorf("%w: missing background or subject layer", pipeline.ErrRasterEngine)
	}

	bgBounds := input.Background.Bounds()
	w, h := bgBounds.Dx(), bgBounds.Dy()
	if input.Layout.Canvas.Width != w || input.Layout.Canvas.Height != h {
		return pipeline.CompositeResult{}, fmt.Errorf("%w: background %dx%d does not match layout %dx%d",
			pipeline.ErrRasterEngine, w, h, input.Layout.Canvas.Width, input.Layout.Canvas.Height)
	}

	canvas := s.renderer.CreateCanvas(w, h, color.Transparent)
	canvas.DrawImage(rebase(input.Background), 0, 0)

	subject := rebase(input.Subject)
	sb := subject.Bounds()
	pt := placement.Place(w, h, sb.Dx(), sb.Dy(), placement.North, 0, input.Layout.TopSpaceHeight)
	canvas.DrawImage(subject, pt.X, pt.Y)
	log.Debug("Subject %dx%d placed at +%d+%d", sb.Dx(), sb.Dy(), pt.X, pt.Y)

	result := pipeline.CompositeResult{
		SubjectBounds: pipeline.Rectangle{X: pt.X, Y: pt.Y, Width: sb.Dx(), Height: sb.Dy()},
	}

	if input.BottomLogo != nil {
		result.LogoBounds = s.drawLogo(log, canvas, input)
	}

	if err := ctx.Err(); err != nil {
		return pipeline.CompositeResult{}, err
	}

	img := canvas.ToImage()
	if input.Final.Width > 0 && input.Final.Height > 0 && (input.Final.Width != w || input.Final.Height != h) {
		log.Debug("Resizing %dx%d to %dx%d", w, h, input.Final.Width, input.Final.Height)
		img = s.renderer.ResizeImage(img, input.Final.Width, input.Final.Height)
	}
	result.Image = img
	return result, nil
}

func (s *Stage) drawLogo(log ports.Logger, canvas ports.Canvas, input pipeline.CompositeInput) pipeline.Rectangle {
	w, h := input.Layout.Canvas.Width, input.Layout.Canvas.Height
	bottomSpace := input.Layout.BottomSpaceHeight

	logo := rebase(input.BottomLogo)
	lb := logo.Bounds()
	maxW, maxH := placement.BottomLogoBox(input.LogoPlacement, w, bottomSpace)
	lw, lh := placement.ScaleToFit(lb.Dx(), lb.Dy(), maxW, maxH)
	if lw <= 0 || lh <= 0 {
		log.Warn("Bottom logo skipped: no room in %dx%d", maxW, maxH)
		return pipeline.Rectangle{}
	}
	log.Debug("Bottom logo: %dx%d -> %dx%d (max: %dx%d)", lb.Dx(), lb.Dy(), lw, lh, maxW, maxH)

	if lw != lb.Dx() || lh != lb.Dy() {
		logo = s.renderer.ResizeImage(logo, lw, lh)
	}
	pt := placement.BottomLogoPoint(input.LogoPlacement, w, h, bottomSpace, lw, lh)
	canvas.DrawImage(logo, pt.X, pt.Y)
	return pipeline.Rectangle{X: pt.X, Y: pt.Y, Width: lw, Height: lh}
}

// rebase returns img with bounds starting at (0,0).
// Drawing helpers position images by their top-left pixel and expect a zero origin.
func rebase(img image.Image) image.Image {
	b := img.Bounds()
	if b.Min == (image.Point{}) {
		return img
	}
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
