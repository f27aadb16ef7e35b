// Package layout implements the layout calculation stage.
package layout

import (
	"context"
	"fmt"

	"github.com/user/storeshots/pkg/pipeline"
)

// BasisPoints is the denominator of every Percentages field (100% = 10000).
const BasisPoints = 10000

// Percentages splits a portrait canvas into reserved bands.
// Values are basis points so the pixel math stays integral.
type Percentages struct {
	TopSpace          int
	MockupSpace       int
	BottomSpace       int
	HorizontalPadding int // per side
}

// DefaultPercentages returns the store layout: 18% top, 72% mockup, 10% bottom, 5% padding.
func DefaultPercentages() Percentages {
	return Percentages{
		TopSpace:          1800,
		MockupSpace:       7200,
		BottomSpace:       1000,
		HorizontalPadding: 500,
	}
}

// Validate checks that the vertical bands cover the whole canvas.
func (p Percentages) Validate() error {
	if sum := p.TopSpace + p.MockupSpace + p.BottomSpace; sum != BasisPoints {
		return fmt.Errorf("layout bands sum to %d basis points, want %d", sum, BasisPoints)
	}
	if p.HorizontalPadding < 0 || p.HorizontalPadding*2 >= BasisPoints {
		return fmt.Errorf("horizontal padding %d basis points out of range", p.HorizontalPadding)
	}
	return nil
}

// Stage calculates the layout regions of a canvas.
// This is a pure function with no external dependencies.
type Stage struct {
	percentages Percentages
}

// NewStage creates a new layout stage with the default percentages.
func NewStage() *Stage {
	return &Stage{percentages: DefaultPercentages()}
}

// NewStageWith creates a layout stage with custom percentages.
func NewStageWith(p Percentages) (*Stage, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Stage{percentages: p}, nil
}

// Execute calculates the layout for the input canvas.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	if input.CanvasWidth <= 0 || input.CanvasHeight <= 0 {
		return pipeline.LayoutResult{}, fmt.Errorf("%w: canvas %dx%d", pipeline.ErrInvalidRequest, input.CanvasWidth, input.CanvasHeight)
	}
	return ComputeLayoutWith(input, s.percentages), nil
}

// ComputeLayout performs the layout calculation with the default percentages.
// This is exposed as a standalone function for testing and reuse.
func ComputeLayout(input pipeline.LayoutInput) pipeline.LayoutResult {
	return ComputeLayoutWith(input, DefaultPercentages())
}

// ComputeLayoutWith divides the canvas using p. Every region is floored.
func ComputeLayoutWith(input pipeline.LayoutInput, p Percentages) pipeline.LayoutResult {
	w, h := input.CanvasWidth, input.CanvasHeight

	topSpace := h * p.TopSpace / BasisPoints
	mockupHeight := h * p.MockupSpace / BasisPoints
	bottomSpace := h * p.BottomSpace / BasisPoints
	padding := w * p.HorizontalPadding / BasisPoints
	mockupWidth := w * (BasisPoints - 2*p.HorizontalPadding) / BasisPoints

	return pipeline.LayoutResult{
		Canvas:            pipeline.Dimension{Width: w, Height: h},
		TopSpaceHeight:    topSpace,
		MockupMaxHeight:   mockupHeight,
		MockupMaxWidth:    mockupWidth,
		BottomSpaceHeight: bottomSpace,
		HorizontalPadding: padding,

		TopArea: pipeline.Rectangle{X: 0, Y: 0, Width: w, Height: topSpace},
		MockupArea: pipeline.Rectangle{
			X:      padding,
			Y:      topSpace,
			Width:  mockupWidth,
			Height: mockupHeight,
		},
		BottomArea: pipeline.Rectangle{X: 0, Y: h - bottomSpace, Width: w, Height: bottomSpace},
	}
}
