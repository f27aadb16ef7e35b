package ggrenderer

import (
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/user/storeshots/pkg/ports"
)

type faceKey struct {
	path string
	size float64
}

// fontCache shares parsed fonts between canvases. Faces are not safe for
// concurrent use, so each key gets its own lock.
type fontCache struct {
	mu    sync.Mutex
	bold  *opentype.Font
	faces map[faceKey]*lockedFace
}

type lockedFace struct {
	mu   sync.Mutex
	face font.Face
}

func newFontCache() *fontCache {
	return &fontCache{faces: make(map[faceKey]*lockedFace)}
}

func (fc *fontCache) face(path string, size float64) (*lockedFace, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	key := faceKey{path: path, size: size}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}

	var face font.Face
	if path != "" {
		var err error
		face, err = gg.LoadFontFace(path, size)
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", path, err)
		}
	} else {
		if fc.bold == nil {
			parsed, err := opentype.Parse(gobold.TTF)
			if err != nil {
				return nil, fmt.Errorf("parse embedded font: %w", err)
			}
			fc.bold = parsed
		}
		var err error
		face, err = opentype.NewFace(fc.bold, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("create font face: %w", err)
		}
	}

	f := &lockedFace{face: face}
	fc.faces[key] = f
	return f, nil
}

// DrawText draws a single line of text. With VAlignTop, y is the top of the
// text box; with VAlignBaseline, y is the baseline.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	f, err := c.fonts.face(style.FontPath, style.FontSize)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	c.dc.SetFontFace(f.face)
	c.dc.SetColor(style.Color)

	// Calculate alignment offset
	ax := 0.0
	switch style.Align {
	case ports.AlignCenter:
		ax = 0.5
	case ports.AlignRight:
		ax = 1.0
	}
	ay := 0.5
	switch style.VAlign {
	case ports.VAlignTop:
		ay = 1.0
	case ports.VAlignBaseline:
		ay = 0
	}

	c.dc.DrawStringAnchored(text, float64(x), float64(y), ax, ay)
	return nil
}

// MeasureText returns the width and height of the text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	f, err := c.fonts.face(style.FontPath, style.FontSize)
	if err != nil {
		return 0, 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	c.dc.SetFontFace(f.face)
	return c.dc.MeasureString(text)
}
