package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// Every method takes the asset name so layers of concurrent requests do not collide.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRequestJSON saves the resolved asset request as JSON.
	SaveRequestJSON(asset string, data []byte) error

	// SaveLayoutJSON saves the layout calculation result as JSON.
	SaveLayoutJSON(asset string, data []byte) error

	// SaveCurvesSVG saves the generated decorative curves as SVG.
	SaveCurvesSVG(asset string, data []byte) error

	// SaveLayer saves an intermediate raster layer.
	SaveLayer(asset, name string, img image.Image) error
}
