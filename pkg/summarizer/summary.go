// Package summarizer provides summary generation for batch results.
package summarizer

import (
	"path/filepath"
	"time"

	"github.com/user/storeshots/pkg/orchestrator"
)

// ReportFile is the report name written next to the generated assets.
const ReportFile = "REPORT.md"

// Summary contains all data collected during a batch run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	Duration    time.Duration

	// Batch settings
	Settings Settings

	// One entry per requested asset, in submission order
	Assets []AssetInfo
}

// Settings contains the batch configuration.
type Settings struct {
	ScreenshotsDir string
	OutputDir      string
	GradientStart  string
	GradientEnd    string
	Profiles       []string
	Workers        int
}

// AssetInfo describes one generated (or failed) asset.
type AssetInfo struct {
	Source   string
	Profile  string
	Output   string
	Width    int
	Height   int
	Bytes    int64
	Duration time.Duration
	Err      string // empty on success
}

// Failed reports whether the asset could not be generated.
func (a AssetInfo) Failed() bool {
	return a.Err != ""
}

// Succeeded returns the number of generated assets.
func (s *Summary) Succeeded() int {
	n := 0
	for _, a := range s.Assets {
		if !a.Failed() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed assets.
func (s *Summary) Failed() int {
	return len(s.Assets) - s.Succeeded()
}

// TotalBytes returns the size of all generated files.
func (s *Summary) TotalBytes() int64 {
	var total int64
	for _, a := range s.Assets {
		total += a.Bytes
	}
	return total
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets batch settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithDuration sets the wall time of the batch.
func (b *Builder) WithDuration(d time.Duration) *Builder {
	b.summary.Duration = d
	return b
}

// AddAsset appends one asset entry.
func (b *Builder) AddAsset(asset AssetInfo) *Builder {
	b.summary.Assets = append(b.summary.Assets, asset)
	return b
}

// WithBatch appends an entry for every batch result.
func (b *Builder) WithBatch(results []orchestrator.BatchResult) *Builder {
	for _, r := range results {
		info := AssetInfo{
			Source:  filepath.Base(r.Request.SourcePath),
			Profile: r.Request.Profile.String(),
			Output:  r.Request.OutputPath,
		}
		if r.Failed() {
			info.Err = r.Err.Error()
		} else {
			info.Width = r.Result.Width
			info.Height = r.Result.Height
			info.Bytes = r.Result.FileSize
			info.Duration = r.Result.Duration
		}
		b.summary.Assets = append(b.summary.Assets, info)
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
