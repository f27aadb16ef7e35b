package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/storeshots/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	CropImageFunc    func(img image.Image, rect image.Rectangle) image.Image
	RotateImageFunc  func(img image.Image, degrees float64) image.Image
	RoundCornersFunc func(img image.Image, radius int) image.Image
	ApplyShadowFunc  func(img image.Image, shadow ports.Shadow, margin int) image.Image

	mu       sync.Mutex
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{width: width, height: height}
	m.mu.Lock()
	m.Canvases = append(m.Canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) CropImage(img image.Image, rect image.Rectangle) image.Image {
	if m.CropImageFunc != nil {
		return m.CropImageFunc(img, rect)
	}
	return image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
}

func (m *Renderer) RotateImage(img image.Image, degrees float64) image.Image {
	if m.RotateImageFunc != nil {
		return m.RotateImageFunc(img, degrees)
	}
	return img
}

func (m *Renderer) RoundCorners(img image.Image, radius int) image.Image {
	if m.RoundCornersFunc != nil {
		return m.RoundCornersFunc(img, radius)
	}
	return img
}

func (m *Renderer) ApplyShadow(img image.Image, shadow ports.Shadow, margin int) image.Image {
	if m.ApplyShadowFunc != nil {
		return m.ApplyShadowFunc(img, shadow, margin)
	}
	b := img.Bounds()
	return image.NewRGBA(image.Rect(0, 0, b.Dx()+margin, b.Dy()+margin))
}

var _ ports.Renderer = (*Renderer)(nil)

// DrawCall records one image drawn onto a mock canvas.
type DrawCall struct {
	Image  image.Image
	X, Y   int
	Width  int
	Height int
}

// Canvas is a mock implementation of ports.Canvas that records draw calls.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA

	DrawTextFunc func(text string, x, y int, style ports.TextStyle) error

	Draws     []DrawCall
	Paths     [][]ports.PathSegment
	Texts     []string
	Gradients []ports.GradientDirection
}

// NewCanvas creates a mock canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

func (m *Canvas) Width() int  { return m.width }
func (m *Canvas) Height() int { return m.height }

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	m.Draws = append(m.Draws, DrawCall{Image: img, X: x, Y: y, Width: b.Dx(), Height: b.Dy()})
}

func (m *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	m.Draws = append(m.Draws, DrawCall{Image: img, X: x, Y: y, Width: width, Height: height})
}

func (m *Canvas) FillGradient(start, end color.Color, direction ports.GradientDirection) {
	m.Gradients = append(m.Gradients, direction)
}

func (m *Canvas) FillPath(segments []ports.PathSegment, c color.Color) {
	m.Paths = append(m.Paths, segments)
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	m.Texts = append(m.Texts, text)
	if m.DrawTextFunc != nil {
		return m.DrawTextFunc(text, x, y, style)
	}
	return nil
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return float64(len(text)) * style.FontSize * 0.5, style.FontSize
}

func (m *Canvas) ToImage() image.Image {
	if m.img != nil {
		return m.img
	}
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
