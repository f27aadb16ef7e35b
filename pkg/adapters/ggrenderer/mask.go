package ggrenderer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// MinCornerRadius is the smallest radius that is masked. Smaller radii
// return the image unchanged.
const MinCornerRadius = 2

// 5x5 binomial kernel (1 4 6 4 1)/16 per axis. OpenCV uses this fixed table
// for a 5x5 Gaussian when sigma is 0 instead of sampling sigma=1.1.
var antiAliasKernel = func() [25]float64 {
	row := [5]float64{1, 4, 6, 4, 1}
	var k [25]float64
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			k[y*5+x] = row[y] * row[x]
		}
	}
	return k
}()

// CornerMask builds a w x h mask that is white inside a rounded rectangle of
// the given radius and black in the clipped corners, with softened edges.
//
// The top-left corner is drawn as a black square with a white circle on top;
// the vertically and horizontally mirrored copies are multiplied in to cover
// the other three corners.
func CornerMask(w, h, radius int) *image.Gray {
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	if radius < min(w, h) {
		r := float64(radius)
		dc.SetColor(color.Black)
		dc.DrawRectangle(0, 0, r, r)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawCircle(r, r, r)
		dc.Fill()
	}

	mask := imaging.Clone(dc.Image())
	multiply(mask, imaging.FlipV(mask))
	multiply(mask, imaging.FlipH(mask))
	mask = imaging.Convolve5x5(mask, antiAliasKernel, &imaging.ConvolveOptions{Normalize: true})

	gray := image.NewGray(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		gray.Pix[i] = mask.Pix[i*4]
	}
	return gray
}

// RoundCorners clips the corners of img with an anti-aliased mask. Existing
// alpha is combined with the mask by taking the minimum, so applying the
// same radius twice gives the same result as applying it once.
func (r *Renderer) RoundCorners(img image.Image, radius int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if radius < MinCornerRadius || w == 0 || h == 0 {
		return img
	}

	mask := CornerMask(w, h, radius)
	out := imaging.Clone(img)
	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		mrow := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := 0; x < w; x++ {
			if m := mrow[x]; m < row[x*4+3] {
				row[x*4+3] = m
			}
		}
	}
	return out
}

// multiply multiplies dst by src channel-wise, in place. Both images must
// have the same size and start at the origin.
func multiply(dst, src *image.NRGBA) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(src.Pix[i]) / 255)
	}
}
