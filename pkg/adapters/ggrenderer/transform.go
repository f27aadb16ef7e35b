package ggrenderer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// CropImage returns the part of img inside rect, given relative to the
// top-left corner of img.Bounds().
func (r *Renderer) CropImage(img image.Image, rect image.Rectangle) image.Image {
	return imaging.Crop(img, rect.Add(img.Bounds().Min))
}

// RotateImage rotates img clockwise around its center. The output grows to
// fit the rotated image and the uncovered area is transparent.
func (r *Renderer) RotateImage(img image.Image, degrees float64) image.Image {
	return imaging.Rotate(img, -degrees, color.Transparent)
}
