// Package nullsink is the debug sink used when --debug is off.
package nullsink

import (
	"image"

	"github.com/user/storeshots/pkg/ports"
)

// Sink drops every debug artifact. Enabled reports false, so the
// orchestrator skips encoding layers and JSON for it altogether.
type Sink struct{}

func New() *Sink { return &Sink{} }

func (Sink) Enabled() bool { return false }

func (Sink) SaveRequestJSON(string, []byte) error       { return nil }
func (Sink) SaveLayoutJSON(string, []byte) error        { return nil }
func (Sink) SaveCurvesSVG(string, []byte) error         { return nil }
func (Sink) SaveLayer(string, string, image.Image) error { return nil }

var _ ports.DebugSink = (*Sink)(nil)
