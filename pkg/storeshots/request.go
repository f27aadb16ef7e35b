// Package storeshots provides a high-level API for creating store listing
// mockups from app screenshots.
package storeshots

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/storeshots/pkg/config"
	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/profile"
)

// RequestBuilder provides a fluent interface for building an AssetRequest.
// Errors from setters are kept and returned by Build.
type RequestBuilder struct {
	req       pipeline.AssetRequest
	outputDir string
	err       error
}

// NewRequestBuilder creates a builder for one asset of the given profile,
// using the default gradient preset.
func NewRequestBuilder(source string, kind profile.Kind) *RequestBuilder {
	b := &RequestBuilder{
		req: pipeline.AssetRequest{
			SourcePath: source,
			Profile:    kind,
		},
		outputDir: ".",
	}
	return b.WithPreset(config.DefaultPreset)
}

// NewFeatureGraphicBuilder creates a builder for the Feature Graphic.
func NewFeatureGraphicBuilder(screenshot string) *RequestBuilder {
	return NewRequestBuilder(screenshot, profile.FeatureGraphic)
}

// Build returns the final request. When no output path was set, the asset is
// written below the output directory in the profile's own folder.
func (b *RequestBuilder) Build() (pipeline.AssetRequest, error) {
	if b.err != nil {
		return pipeline.AssetRequest{}, b.err
	}

	req := b.req
	req.TextLines = append([]string(nil), b.req.TextLines...)
	if req.OutputPath == "" {
		p, err := profile.Lookup(req.Profile)
		if err != nil {
			return pipeline.AssetRequest{}, err
		}
		name := orchestrator.FeatureGraphicFile
		if p.Banner == nil {
			base := filepath.Base(req.SourcePath)
			name = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
		}
		req.OutputPath = filepath.Join(b.outputDir, p.OutputDir, name)
	}

	if err := req.Validate(); err != nil {
		return pipeline.AssetRequest{}, err
	}
	return req, nil
}

// WithGradient sets both background colors.
func (b *RequestBuilder) WithGradient(start, end string) *RequestBuilder {
	b.req.GradientStart = start
	b.req.GradientEnd = end
	return b
}

// WithPreset applies a named gradient preset.
func (b *RequestBuilder) WithPreset(name string) *RequestBuilder {
	g, err := config.Preset(name)
	if err != nil {
		b.fail(fmt.Errorf("%w: %v", pipeline.ErrInvalidRequest, err))
		return b
	}
	return b.WithGradient(g.Start, g.End)
}

// WithPrimaryColor derives the gradient from a brand color.
func (b *RequestBuilder) WithPrimaryColor(hex string) *RequestBuilder {
	g, err := config.FromPrimary(hex)
	if err != nil {
		b.fail(err)
		return b
	}
	return b.WithGradient(g.Start, g.End)
}

// WithTopImage sets the optional image drawn in the top space.
func (b *RequestBuilder) WithTopImage(path string) *RequestBuilder {
	b.req.TopImagePath = path
	return b
}

// WithLogo sets the logo. Portrait profiles draw it in the bottom space,
// the Feature Graphic in its top-left corner.
func (b *RequestBuilder) WithLogo(path string) *RequestBuilder {
	b.req.BottomLogoPath = path
	return b
}

// WithSeed overrides the curve seed.
func (b *RequestBuilder) WithSeed(seed string) *RequestBuilder {
	b.req.Seed = seed
	return b
}

// WithText sets the Feature Graphic text lines.
func (b *RequestBuilder) WithText(lines ...string) *RequestBuilder {
	b.req.TextLines = lines
	return b
}

// WithTextColor sets the Feature Graphic text color.
func (b *RequestBuilder) WithTextColor(hex string) *RequestBuilder {
	b.req.TextColor = hex
	return b
}

// WithFont sets a TrueType font for the Feature Graphic text.
func (b *RequestBuilder) WithFont(path string) *RequestBuilder {
	b.req.FontPath = path
	return b
}

// WithOutput sets the exact output path.
func (b *RequestBuilder) WithOutput(path string) *RequestBuilder {
	b.req.OutputPath = path
	return b
}

// WithOutputDir sets the root directory used when no output path is given.
func (b *RequestBuilder) WithOutputDir(dir string) *RequestBuilder {
	b.outputDir = dir
	return b
}

// fail records the first setter error.
func (b *RequestBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
