package curves

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/user/storeshots/pkg/ports"
)

// Paint fills every path onto canvas with a single color.
func Paint(canvas ports.Canvas, paths []Path, c color.Color) {
	for _, p := range paths {
		canvas.FillPath(p.Segments, c)
	}
}

// Overlay renders the curves for (width, height, seed) onto a transparent
// layer. When no path can be produced the returned error wraps
// ErrDegenerateGeometry and the image is nil.
func (g *Generator) Overlay(renderer ports.Renderer, width, height int, seed string, orientation Orientation, c color.Color) (image.Image, []Path, error) {
	paths, err := g.Generate(width, height, seed, orientation)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%w: no paths for seed %q", ErrDegenerateGeometry, seed)
	}

	canvas := renderer.CreateCanvas(width, height, color.Transparent)
	Paint(canvas, paths, c)
	return canvas.ToImage(), paths, nil
}

// SVGDocument renders paths as a standalone SVG document, for debugging.
func SVGDocument(width, height int, paths []Path, fill string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", width, height, width, height)
	for _, p := range paths {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s"/>`+"\n", p.SVG(), fill)
	}
	b.WriteString("</svg>\n")
	return []byte(b.String())
}
