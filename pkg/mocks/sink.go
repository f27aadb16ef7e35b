package mocks

import (
	"image"
	"sync"

	"github.com/user/storeshots/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	RequestJSON map[string][]byte
	LayoutJSON  map[string][]byte
	CurvesSVG   map[string][]byte
	Layers      map[string]map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:     enabled,
		RequestJSON: make(map[string][]byte),
		LayoutJSON:  make(map[string][]byte),
		CurvesSVG:   make(map[string][]byte),
		Layers:      make(map[string]map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveRequestJSON(asset string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestJSON[asset] = data
	return nil
}

func (m *DebugSink) SaveLayoutJSON(asset string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutJSON[asset] = data
	return nil
}

func (m *DebugSink) SaveCurvesSVG(asset string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CurvesSVG[asset] = data
	return nil
}

func (m *DebugSink) SaveLayer(asset, name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Layers[asset] == nil {
		m.Layers[asset] = make(map[string]image.Image)
	}
	m.Layers[asset][name] = img
	return nil
}

// Layer returns a saved layer (for test verification).
func (m *DebugSink) Layer(asset, name string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.Layers[asset][name]
	return img, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                     { return false }
func (m *NullSink) SaveRequestJSON(asset string, data []byte) error   { return nil }
func (m *NullSink) SaveLayoutJSON(asset string, data []byte) error    { return nil }
func (m *NullSink) SaveCurvesSVG(asset string, data []byte) error     { return nil }
func (m *NullSink) SaveLayer(asset, name string, img image.Image) error { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
