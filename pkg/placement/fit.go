// Package placement holds the integer geometry shared by the assemblers:
// aspect crops, scale-to-fit policies and gravity-anchored placement.
package placement

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrSourceTooSmall is returned when a crop cannot fit inside its source.
var ErrSourceTooSmall = errors.New("source image too small")

// CropForAspect returns the region of a srcW x srcH image matching aspect
// (width / height). The first statusBar rows are always skipped. When the
// source is too short the crop keeps the remaining height and is centered
// horizontally; otherwise it keeps the full width.
func CropForAspect(srcW, srcH int, aspect float64, statusBar int) (image.Rectangle, error) {
	if srcW <= 0 || srcH <= statusBar || aspect <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d with %dpx status bar", ErrSourceTooSmall, srcW, srcH, statusBar)
	}

	height := int(float64(srcW) / aspect)
	width := srcW
	x := 0
	if height > srcH-statusBar {
		height = srcH - statusBar
		width = int(float64(height) * aspect)
		x = (srcW - width) / 2
	}
	if width <= 0 || height <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d", ErrSourceTooSmall, srcW, srcH)
	}
	return image.Rect(x, statusBar, x+width, statusBar+height), nil
}

// FitWithin scales (w, h) to fill the maxW x maxH box along its binding
// dimension, preserving aspect ratio. Smaller sources are scaled up.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	aspect := float64(w) / float64(h)
	if float64(maxW)/float64(maxH) > aspect {
		return int(float64(maxH) * aspect), maxH
	}
	return maxW, int(float64(maxW) / aspect)
}

// FitDownscale is FitWithin that never enlarges: sources already inside the
// box are returned unchanged.
func FitDownscale(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	if scale >= 1 {
		return w, h
	}
	return int(float64(w) * scale), int(float64(h) * scale)
}

// ScaleToFit applies the dual-constraint policy used for overlays: the
// smaller of the width and height scale factors wins.
func ScaleToFit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return int(float64(w) * scale), int(float64(h) * scale)
}

// ScaleToHeight scales (w, h) so the height is at most maxH, never enlarging.
func ScaleToHeight(w, h, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := math.Min(1, float64(maxH)/float64(h))
	return int(float64(w) * scale), int(float64(h) * scale)
}
