// Package banner implements the Feature Graphic stage: a landscape banner
// with a tilted phone on the right and the logo and promotional text on the
// left.
package banner

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/placement"
	"github.com/user/storeshots/pkg/ports"
)

// Stage composes a Feature Graphic on a prepared background.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new banner stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("banner"),
	}
}

// Execute draws the phone, the logo and the text lines over the background.
func (s *Stage) Execute(ctx context.Context, input pipeline.BannerInput) (pipeline.BannerResult, error) {
	log := ports.LoggerFor(ctx, s.logger)
	if input.Background == nil {
		return pipeline.BannerResult{}, fmt.Errorf("%w: missing background", pipeline.ErrRasterEngine)
	}
	if input.Source == nil {
		return pipeline.BannerResult{}, fmt.Errorf("%w: no source screenshot", pipeline.ErrImageDecode)
	}

	log.Debug("Generating banner")

	bg := input.Background.Bounds()
	w, h := bg.Dx(), bg.Dy()
	canvas := s.renderer.CreateCanvas(w, h, color.Transparent)
	canvas.DrawImage(input.Background, 0, 0)

	phone, err := s.phone(log, input, h)
	if err != nil {
		return pipeline.BannerResult{}, err
	}
	pb := phone.Bounds()
	rightMargin := int(float64(w) * input.Spec.PhoneRightMarginRatio)
	pt := placement.Place(w, h, pb.Dx(), pb.Dy(), placement.East, rightMargin, 0)
	canvas.DrawImage(phone, pt.X, pt.Y)
	log.Debug("Phone %dx%d placed at +%d+%d", pb.Dx(), pb.Dy(), pt.X, pt.Y)

	result := pipeline.BannerResult{
		PhoneBounds: pipeline.Rectangle{X: pt.X, Y: pt.Y, Width: pb.Dx(), Height: pb.Dy()},
	}

	if err := ctx.Err(); err != nil {
		return pipeline.BannerResult{}, err
	}

	leftMargin := int(float64(w) * input.Spec.TextLeftMarginRatio)
	if input.Logo != nil {
		result.LogoBounds = s.drawLogo(log, canvas, input, leftMargin, h)
	}

	bounds, err := s.drawText(log, canvas, input, leftMargin, h)
	if err != nil {
		return pipeline.BannerResult{}, err
	}
	result.TextBounds = bounds

	result.Image = canvas.ToImage()
	log.Debug("Banner generated: %dx%d", w, h)
	return result, nil
}

// phone crops the screenshot below the status bar to the phone aspect,
// then rounds, tilts and shadows it.
func (s *Stage) phone(log ports.Logger, input pipeline.BannerInput, canvasH int) (image.Image, error) {
	spec := input.Spec
	phoneH := int(float64(canvasH) * spec.PhoneHeightRatio)
	phoneW := int(float64(phoneH) * spec.PhoneAspect)

	src := input.Source.Bounds()
	crop, err := placement.CropForAspect(src.Dx(), src.Dy(), spec.PhoneAspect, input.StatusBarOffset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pipeline.ErrRasterEngine, err)
	}
	log.Debug("Phone crop %dx%d at +%d+%d, resized to %dx%d", crop.Dx(), crop.Dy(), crop.Min.X, crop.Min.Y, phoneW, phoneH)

	img := s.renderer.CropImage(input.Source, crop)
	img = s.renderer.ResizeImage(img, phoneW, phoneH)
	img = s.renderer.RoundCorners(img, spec.PhoneCornerRadius)
	img = s.renderer.RotateImage(img, spec.PhoneRotation)
	img = s.renderer.ApplyShadow(img, pipeline.ShadowFromProfile(input.Shadow), input.ShadowMargin)
	if img == nil {
		return nil, fmt.Errorf("%w: phone layer is empty", pipeline.ErrRasterEngine)
	}
	return img, nil
}

// drawLogo draws the logo at the top left, shrunk to the maximum height.
func (s *Stage) drawLogo(log ports.Logger, canvas ports.Canvas, input pipeline.BannerInput, left, canvasH int) pipeline.Rectangle {
	lb := input.Logo.Bounds()
	maxH := int(float64(canvasH) * input.Spec.LogoMaxHeightRatio)
	lw, lh := placement.ScaleToHeight(lb.Dx(), lb.Dy(), maxH)
	if lw <= 0 || lh <= 0 {
		log.Warn("Banner logo skipped: empty image")
		return pipeline.Rectangle{}
	}

	logo := input.Logo
	if lw != lb.Dx() || lh != lb.Dy() {
		logo = s.renderer.ResizeImage(logo, lw, lh)
	}
	top := int(float64(canvasH) * input.Spec.LogoTopMarginRatio)
	pt := placement.Place(canvas.Width(), canvasH, lw, lh, placement.NorthWest, left, top)
	canvas.DrawImage(logo, pt.X, pt.Y)
	log.Debug("Banner logo: %dx%d -> %dx%d", lb.Dx(), lb.Dy(), lw, lh)
	return pipeline.Rectangle{X: pt.X, Y: pt.Y, Width: lw, Height: lh}
}

// drawText writes one line per entry, top-aligned at fixed line spacing.
func (s *Stage) drawText(log ports.Logger, canvas ports.Canvas, input pipeline.BannerInput, left, canvasH int) ([]pipeline.Rectangle, error) {
	lines := input.TextLines
	if len(lines) == 0 {
		return nil, nil
	}

	size := int(float64(canvasH) * input.Spec.TextSizeRatio)
	top := int(float64(canvasH) * input.Spec.TextTopMarginRatio)
	lineHeight := int(float64(size) * input.Spec.LineHeightRatio)

	textColor := input.TextColor
	if textColor == nil {
		textColor = color.White
	}
	style := ports.TextStyle{
		FontSize: float64(size),
		FontPath: input.FontPath,
		Color:    textColor,
		Align:    ports.AlignLeft,
		VAlign:   ports.VAlignTop,
	}

	bounds := make([]pipeline.Rectangle, 0, len(lines))
	for i, line := range lines {
		y := top + i*lineHeight
		if err := canvas.DrawText(line, left, y, style); err != nil {
			return nil, fmt.Errorf("%w: draw text %q: %v", pipeline.ErrRasterEngine, line, err)
		}
		tw, th := canvas.MeasureText(line, style)
		bounds = append(bounds, pipeline.Rectangle{X: left, Y: y, Width: int(tw), Height: int(th)})
	}
	log.Debug("Banner text: %d lines at size %d", len(lines), size)
	return bounds, nil
}
