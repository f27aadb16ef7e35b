// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/storeshots/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library for vector work
// and imaging for pixel filters. It is safe for concurrent use.
type Renderer struct {
	fonts *fontCache
}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{fonts: newFontCache()}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, fonts: r.fonts}
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	default:
		// Try to auto-detect
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc    *gg.Context
	fonts *fontCache
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.dc.Width()
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.dc.Height()
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawImageScaled draws an image scaled to the specified dimensions.
func (c *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	c.dc.Push()
	defer c.dc.Pop()

	bounds := img.Bounds()
	scaleX := float64(width) / float64(bounds.Dx())
	scaleY := float64(height) / float64(bounds.Dy())

	c.dc.Translate(float64(x), float64(y))
	c.dc.Scale(scaleX, scaleY)
	c.dc.DrawImage(img, 0, 0)
}

// FillGradient fills the canvas with a two-stop linear gradient.
func (c *Canvas) FillGradient(start, end color.Color, direction ports.GradientDirection) {
	w, h := float64(c.dc.Width()), float64(c.dc.Height())

	var grad gg.Gradient
	switch direction {
	case ports.GradientEast:
		grad = gg.NewLinearGradient(0, 0, w, 0)
	default:
		grad = gg.NewLinearGradient(0, 0, 0, h)
	}
	grad.AddColorStop(0, start)
	grad.AddColorStop(1, end)

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(0, 0, w, h)
	c.dc.Fill()
}

// FillPath fills a closed path with the nonzero winding rule.
func (c *Canvas) FillPath(segments []ports.PathSegment, col color.Color) {
	c.dc.Push()
	defer c.dc.Pop()

	c.dc.NewSubPath()
	for _, seg := range segments {
		p := func(i int) (float64, float64) {
			return float64(seg.Points[i].X), float64(seg.Points[i].Y)
		}
		switch seg.Op {
		case ports.PathMoveTo:
			c.dc.MoveTo(p(0))
		case ports.PathLineTo:
			c.dc.LineTo(p(0))
		case ports.PathQuadTo:
			x1, y1 := p(0)
			x2, y2 := p(1)
			c.dc.QuadraticTo(x1, y1, x2, y2)
		case ports.PathCubicTo:
			x1, y1 := p(0)
			x2, y2 := p(1)
			x3, y3 := p(2)
			c.dc.CubicTo(x1, y1, x2, y2, x3, y3)
		case ports.PathClose:
			c.dc.ClosePath()
		}
	}
	c.dc.SetFillRule(gg.FillRuleWinding)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
