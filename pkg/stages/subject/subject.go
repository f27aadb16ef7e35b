// Package subject implements the subject preparation stage: crop or fit the
// source, round its corners and put it on a drop shadow.
package subject

import (
	"context"
	"fmt"
	"image"

	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/placement"
	"github.com/user/storeshots/pkg/ports"
)

// Stage turns a decoded source into the shadowed layer that sits on the
// background.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new subject stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("subject"),
	}
}

// Execute prepares the subject for the input profile.
//
// Device-frame profiles take an already-framed mockup: the frame corners are
// rounded at source resolution, then the mockup is shrunk into the mockup box
// if it does not fit. Raw screenshots are cropped to the profile aspect below
// the status bar, then fitted to the box and rounded.
func (s *Stage) Execute(ctx context.Context, input pipeline.SubjectInput) (pipeline.SubjectResult, error) {
	log := ports.LoggerFor(ctx, s.logger)
	if input.Source == nil {
		return pipeline.SubjectResult{}, fmt.Errorf("%w: no source image", pipeline.ErrImageDecode)
	}
	if err := ctx.Err(); err != nil {
		return pipeline.SubjectResult{}, err
	}

	maxW, maxH := input.Layout.MockupMaxWidth, input.Layout.MockupMaxHeight
	if maxW <= 0 || maxH <= 0 {
		return pipeline.SubjectResult{}, fmt.Errorf("%w: empty mockup box %dx%d", pipeline.ErrRasterEngine, maxW, maxH)
	}

	var (
		rounded image.Image
		crop    image.Rectangle
		err     error
	)
	if input.Profile.UsesDeviceFrame {
		rounded, crop = s.frame(log, input.Source, input.Profile.CornerRadius, maxW, maxH)
	} else {
		rounded, crop, err = s.cropAndFit(log, input, maxW, maxH)
		if err != nil {
			return pipeline.SubjectResult{}, err
		}
	}

	shadow := pipeline.ShadowFromProfile(input.Profile.Shadow)
	shadowed := s.renderer.ApplyShadow(rounded, shadow, input.Profile.ShadowMargin)
	if shadowed == nil {
		return pipeline.SubjectResult{}, fmt.Errorf("%w: shadow synthesis returned no image", pipeline.ErrRasterEngine)
	}

	b := shadowed.Bounds()
	log.Debug("Subject prepared: %dx%d with shadow", b.Dx(), b.Dy())

	return pipeline.SubjectResult{
		Rounded:  rounded,
		Shadowed: shadowed,
		Crop:     pipeline.RectangleFrom(crop),
	}, nil
}

func (s *Stage) frame(log ports.Logger, src image.Image, radius, maxW, maxH int) (image.Image, image.Rectangle) {
	b := src.Bounds()
	rounded := s.renderer.RoundCorners(src, radius)

	w, h := placement.FitDownscale(b.Dx(), b.Dy(), maxW, maxH)
	if w != b.Dx() || h != b.Dy() {
		log.Debug("Mockup resized to fit: %dx%d", w, h)
		rounded = s.renderer.ResizeImage(rounded, w, h)
	} else {
		log.Debug("Mockup already fits within %dx%d", maxW, maxH)
	}
	return rounded, image.Rect(0, 0, b.Dx(), b.Dy())
}

func (s *Stage) cropAndFit(log ports.Logger, input pipeline.SubjectInput, maxW, maxH int) (image.Image, image.Rectangle, error) {
	b := input.Source.Bounds()
	p := input.Profile

	crop, err := placement.CropForAspect(b.Dx(), b.Dy(), p.AspectRatio, p.StatusBarOffset)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", pipeline.ErrRasterEngine, err)
	}
	log.Debug("Cropping %dx%d to %dx%d at +%d+%d", b.Dx(), b.Dy(), crop.Dx(), crop.Dy(), crop.Min.X, crop.Min.Y)
	cropped := s.renderer.CropImage(input.Source, crop)

	w, h := placement.FitWithin(crop.Dx(), crop.Dy(), maxW, maxH)
	if w <= 0 || h <= 0 {
		return nil, image.Rectangle{}, fmt.Errorf("%w: fitted size %dx%d", pipeline.ErrRasterEngine, w, h)
	}
	log.Debug("Fitted to %dx%d (max %dx%d)", w, h, maxW, maxH)
	resized := s.renderer.ResizeImage(cropped, w, h)

	return s.renderer.RoundCorners(resized, p.CornerRadius), crop, nil
}
