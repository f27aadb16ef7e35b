// Package ports declares the interfaces the asset pipeline depends on.
package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions and background color.
	// Use color.Transparent for an empty layer.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// CropImage returns the part of img inside rect, re-based at the origin.
	// rect is relative to img.Bounds().Min.
	CropImage(img image.Image, rect image.Rectangle) image.Image

	// RotateImage rotates img clockwise by degrees around its center.
	// The result is enlarged to hold the rotated image; uncovered pixels are transparent.
	RotateImage(img image.Image, degrees float64) image.Image

	// RoundCorners clips the four corners of img to the given radius with
	// anti-aliased edges. Existing alpha is preserved.
	RoundCorners(img image.Image, radius int) image.Image

	// ApplyShadow returns img centered on a transparent canvas enlarged by
	// margin on each axis, with a drop shadow derived from its alpha underneath.
	ApplyShadow(img image.Image, shadow Shadow, margin int) image.Image
}

// Canvas provides drawing operations for compositing images.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// DrawImage draws an image at the specified position using "over" compositing.
	DrawImage(img image.Image, x, y int)

	// DrawImageScaled draws an image scaled to the specified dimensions.
	DrawImageScaled(img image.Image, x, y, width, height int)

	// FillGradient fills the whole canvas with a two-stop linear gradient.
	FillGradient(start, end color.Color, direction GradientDirection)

	// FillPath fills a closed path built from segments.
	FillPath(segments []PathSegment, c color.Color)

	// DrawText draws a single line of text at the specified position.
	DrawText(text string, x, y int, style TextStyle) error

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// GradientDirection specifies the axis of a linear gradient.
type GradientDirection int

const (
	// GradientVertical runs from the top edge (start) to the bottom edge (end).
	GradientVertical GradientDirection = iota
	// GradientEast runs from the left edge (start) to the right edge (end).
	GradientEast
)

// PathOp is a path drawing command.
type PathOp int

const (
	PathMoveTo PathOp = iota
	PathLineTo
	PathQuadTo  // Points: control, end
	PathCubicTo // Points: control1, control2, end
	PathClose
)

// PathSegment is one command of a vector path.
type PathSegment struct {
	Op     PathOp
	Points []image.Point
}

// Shadow holds drop shadow parameters.
type Shadow struct {
	Opacity float64 // 0..1
	Sigma   float64 // Gaussian blur sigma in pixels
	OffsetX int
	OffsetY int
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string // empty selects the embedded bold Go font
	Color    color.Color
	Align    TextAlign
	VAlign   TextVAlign
}

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextVAlign specifies which part of the text box y refers to.
type TextVAlign int

const (
	VAlignMiddle TextVAlign = iota
	VAlignTop
	VAlignBaseline
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
	// FormatAuto detects the format from the data when decoding.
	FormatAuto
)
