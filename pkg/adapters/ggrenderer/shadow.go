package ggrenderer

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/user/storeshots/pkg/ports"
)

// ApplyShadow draws img centered on a transparent canvas enlarged by margin,
// over a blurred silhouette of itself moved by the shadow offset.
func (r *Renderer) ApplyShadow(img image.Image, shadow ports.Shadow, margin int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	cw, ch := w+margin, h+margin
	x := (cw - w) / 2
	y := (ch - h) / 2

	sil := silhouette(img, shadow.Opacity)
	layer := image.NewNRGBA(image.Rect(0, 0, cw, ch))
	dc := gg.NewContextForImage(layer)
	dc.DrawImage(sil, x+shadow.OffsetX, y+shadow.OffsetY)

	blurred := blur(dc.Image(), shadow.Sigma)

	out := gg.NewContext(cw, ch)
	out.DrawImage(blurred, 0, 0)
	out.DrawImage(img, x, y)
	return out.Image()
}

// silhouette returns a black copy of img with alpha scaled by opacity.
func silhouette(img image.Image, opacity float64) *image.NRGBA {
	src := imaging.Clone(img)
	opacity = math.Max(0, math.Min(1, opacity))
	for i := 0; i < len(src.Pix); i += 4 {
		a := float64(src.Pix[i+3]) * opacity
		src.Pix[i] = 0
		src.Pix[i+1] = 0
		src.Pix[i+2] = 0
		src.Pix[i+3] = uint8(math.Round(a))
	}
	return src
}

// blur applies a Gaussian blur. Large sigmas are computed on a downscaled
// copy, which is visually equivalent for soft shadows and keeps the cost
// independent of the shadow size.
func blur(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	b := img.Bounds()
	factor := int(sigma / 4)
	if factor <= 1 {
		return imaging.Blur(img, sigma)
	}

	sw := max(1, b.Dx()/factor)
	sh := max(1, b.Dy()/factor)
	small := imaging.Resize(img, sw, sh, imaging.Linear)
	small = imaging.Blur(small, sigma/float64(factor))
	return imaging.Resize(small, b.Dx(), b.Dy(), imaging.Linear)
}

