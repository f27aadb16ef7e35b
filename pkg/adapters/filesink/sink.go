// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/storeshots/pkg/ports"
)

// Sink saves debug output to files, one directory per asset:
//
//	<baseDir>/<asset>/request.json
//	<baseDir>/<asset>/layout.json
//	<baseDir>/<asset>/curves.svg
//	<baseDir>/<asset>/<layer>.png
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveRequestJSON saves the resolved asset request.
func (s *Sink) SaveRequestJSON(asset string, data []byte) error {
	return s.fs.WriteFile(s.path(asset, "request.json"), data)
}

// SaveLayoutJSON saves the layout calculation result as JSON.
func (s *Sink) SaveLayoutJSON(asset string, data []byte) error {
	return s.fs.WriteFile(s.path(asset, "layout.json"), data)
}

// SaveCurvesSVG saves the decorative curves as SVG.
func (s *Sink) SaveCurvesSVG(asset string, data []byte) error {
	return s.fs.WriteFile(s.path(asset, "curves.svg"), data)
}

// SaveLayer saves an intermediate layer as PNG.
func (s *Sink) SaveLayer(asset, name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode layer %s: %w", name, err)
	}
	return s.fs.WriteFile(s.path(asset, name+".png"), data)
}

// path keeps asset names inside baseDir.
func (s *Sink) path(asset, file string) string {
	clean := strings.TrimLeft(filepath.Clean("/"+asset), "/\\")
	return filepath.Join(s.baseDir, clean, file)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
