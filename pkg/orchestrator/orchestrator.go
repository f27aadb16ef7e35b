// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/storeshots/pkg/colorutil"
	"github.com/user/storeshots/pkg/curves"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/profile"
)

// Orchestrator runs the per-asset pipeline: decode, layout, subject,
// background, composite (or banner) and encode.
type Orchestrator struct {
	layoutStage     pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	subjectStage    pipeline.Stage[pipeline.SubjectInput, pipeline.SubjectResult]
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult]
	compositeStage  pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult]
	bannerStage     pipeline.Stage[pipeline.BannerInput, pipeline.BannerResult]
	encodeStage     pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	renderer        ports.Renderer
	fs              ports.FileSystem
	sink            ports.DebugSink
	logger          ports.Logger
	now             func() time.Time
}

// New creates a new Orchestrator.
func New(
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	subjectStage pipeline.Stage[pipeline.SubjectInput, pipeline.SubjectResult],
	backgroundStage pipeline.Stage[pipeline.BackgroundInput, pipeline.BackgroundResult],
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult],
	bannerStage pipeline.Stage[pipeline.BannerInput, pipeline.BannerResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		layoutStage:     layoutStage,
		subjectStage:    subjectStage,
		backgroundStage: backgroundStage,
		compositeStage:  compositeStage,
		bannerStage:     bannerStage,
		encodeStage:     encodeStage,
		renderer:        renderer,
		fs:              fs,
		sink:            sink,
		logger:          logger,
		now:             time.Now,
	}
}

// AssetResult describes one generated asset.
type AssetResult struct {
	Request  pipeline.AssetRequest
	Profile  profile.Profile
	Seed     string
	Output   string
	Width    int
	Height   int
	FileSize int64
	Duration time.Duration
}

// resolved holds the request parameters after validation.
type resolved struct {
	req        pipeline.AssetRequest
	profile    profile.Profile
	start      color.Color
	end        color.Color
	curveColor color.Color
	textColor  color.Color
	seed       string
	asset      string
}

// Run generates one asset. Failures are returned with the failing stage
// attached; the output path is only written when every stage succeeded.
func (o *Orchestrator) Run(ctx context.Context, req pipeline.AssetRequest) (result AssetResult, err error) {
	began := o.now()
	key := assetKey(req)
	ctx = ports.ContextWithAsset(ctx, key)
	log := o.logger.WithAsset(key)
	defer func() {
		if r := recover(); r != nil {
			err = pipeline.WrapStage("render", fmt.Errorf("%w: panic: %v", pipeline.ErrRasterEngine, r))
		}
		if err != nil {
			log.Error("Failed to generate %s: %s", req.Name(), err)
		}
	}()

	log.Info("Generating %s", req.Name())

	r, err := o.resolve(req)
	if err != nil {
		return AssetResult{}, pipeline.WrapStage("validate", err)
	}
	o.saveRequest(r)

	source, err := o.loadImage(req.SourcePath)
	if err != nil {
		return AssetResult{}, pipeline.WrapStage("decode", err)
	}

	var final image.Image
	if r.profile.Banner != nil {
		final, err = o.runBanner(ctx, r, source)
	} else {
		final, err = o.runPortrait(ctx, r, source)
	}
	if err != nil {
		return AssetResult{}, err
	}

	encoded, err := pipeline.Run(ctx, "encode", o.encodeStage, pipeline.EncodeInput{Image: final, OutputPath: req.OutputPath})
	if err != nil {
		return AssetResult{}, err
	}

	log.Info("Wrote %s (%dx%d)", encoded.Path, encoded.Width, encoded.Height)

	return AssetResult{
		Request:  req,
		Profile:  r.profile,
		Seed:     r.seed,
		Output:   encoded.Path,
		Width:    encoded.Width,
		Height:   encoded.Height,
		FileSize: encoded.FileSize,
		Duration: o.now().Sub(began),
	}, nil
}

// runPortrait assembles a store screenshot: subject on a vertical gradient
// with curves, optional top image and bottom logo, resized to the final size.
func (o *Orchestrator) runPortrait(ctx context.Context, r resolved, source image.Image) (image.Image, error) {
	p := r.profile

	layout, err := pipeline.Run(ctx, "layout", o.layoutStage, pipeline.LayoutInput{CanvasWidth: p.Working.Width, CanvasHeight: p.Working.Height})
	if err != nil {
		return nil, err
	}
	o.saveLayout(r.asset, layout)

	topImage, err := o.loadOptional(r.req.TopImagePath)
	if err != nil {
		return nil, pipeline.WrapStage("decode", err)
	}
	logo, err := o.loadOptional(r.req.BottomLogoPath)
	if err != nil {
		return nil, pipeline.WrapStage("decode", err)
	}

	subject, err := pipeline.Run(ctx, "subject", o.subjectStage, pipeline.SubjectInput{Source: source, Profile: p, Layout: layout})
	if err != nil {
		return nil, err
	}
	o.saveLayer(r.asset, "subject", subject.Shadowed)

	bg, err := pipeline.Run(ctx, "background", o.backgroundStage, pipeline.BackgroundInput{
		Width:          p.Working.Width,
		Height:         p.Working.Height,
		GradientStart:  r.start,
		GradientEnd:    r.end,
		Direction:      ports.GradientVertical,
		CurveColor:     r.curveColor,
		Orientation:    curves.Vertical,
		Seed:           r.seed,
		TopImage:       topImage,
		TopPlacement:   p.TopImage,
		TopSpaceHeight: layout.TopSpaceHeight,
	})
	if err != nil {
		return nil, err
	}
	o.saveCurves(r, p.Working, bg.Curves)
	o.saveLayer(r.asset, "background", bg.Image)

	composite, err := pipeline.Run(ctx, "composite", o.compositeStage, pipeline.CompositeInput{
		Background:    bg.Image,
		Subject:       subject.Shadowed,
		Layout:        layout,
		BottomLogo:    logo,
		LogoPlacement: p.BottomLogo,
		Final:         pipeline.Dimension{Width: p.Final.Width, Height: p.Final.Height},
	})
	if err != nil {
		return nil, err
	}
	o.saveLayer(r.asset, "final", composite.Image)
	return composite.Image, nil
}

// runBanner assembles the Feature Graphic on a horizontal background.
func (o *Orchestrator) runBanner(ctx context.Context, r resolved, source image.Image) (image.Image, error) {
	p := r.profile

	logo, err := o.loadOptional(r.req.BottomLogoPath)
	if err != nil {
		return nil, pipeline.WrapStage("decode", err)
	}

	bg, err := pipeline.Run(ctx, "background", o.backgroundStage, pipeline.BackgroundInput{
		Width:         p.Final.Width,
		Height:        p.Final.Height,
		GradientStart: r.start,
		GradientEnd:   r.end,
		Direction:     ports.GradientEast,
		CurveColor:    r.curveColor,
		Orientation:   curves.Horizontal,
		Seed:          r.seed,
	})
	if err != nil {
		return nil, err
	}
	o.saveCurves(r, p.Final, bg.Curves)
	o.saveLayer(r.asset, "background", bg.Image)

	lines := r.req.TextLines
	if lines == nil {
		lines = p.Banner.DefaultTextLines
	}
	banner, err := pipeline.Run(ctx, "banner", o.bannerStage, pipeline.BannerInput{
		Background:      bg.Image,
		Source:          source,
		Logo:            logo,
		TextLines:       lines,
		TextColor:       r.textColor,
		FontPath:        r.req.FontPath,
		Spec:            *p.Banner,
		Shadow:          p.Shadow,
		ShadowMargin:    p.ShadowMargin,
		StatusBarOffset: p.StatusBarOffset,
	})
	if err != nil {
		return nil, err
	}
	o.saveLayer(r.asset, "final", banner.Image)
	return banner.Image, nil
}

// resolve validates the request and converts its colors.
func (o *Orchestrator) resolve(req pipeline.AssetRequest) (resolved, error) {
	if err := req.Validate(); err != nil {
		return resolved{}, err
	}
	p, err := profile.Lookup(req.Profile)
	if err != nil {
		return resolved{}, err
	}

	start := colorutil.MustParseHex(req.GradientStart)
	end := colorutil.MustParseHex(req.GradientEnd)
	curveHex, err := colorutil.CurveColor(req.GradientStart)
	if err != nil {
		return resolved{}, err
	}

	r := resolved{
		req:        req,
		profile:    p,
		start:      start,
		end:        end,
		curveColor: colorutil.MustParseHex(curveHex),
		seed:       req.EffectiveSeed(o.now()),
		asset:      assetKey(req),
	}
	if p.Banner != nil {
		textHex := req.TextColor
		if textHex == "" {
			textHex = p.Banner.DefaultTextColor
		}
		r.textColor = colorutil.MustParseHex(textHex)
	}
	return r, nil
}

func (o *Orchestrator) loadImage(path string) (image.Image, error) {
	data, err := o.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pipeline.ErrImageDecode, path, err)
	}
	img, err := o.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pipeline.ErrImageDecode, path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", pipeline.ErrImageDecode, path)
	}
	return img, nil
}

// loadOptional loads an overlay. An empty path means no overlay.
func (o *Orchestrator) loadOptional(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	return o.loadImage(path)
}

// assetKey names the debug folder of a request, e.g. "01_home_ipad".
func assetKey(req pipeline.AssetRequest) string {
	base := filepath.Base(req.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_" + req.Profile.String()
}

func (o *Orchestrator) saveRequest(r resolved) {
	if !o.sink.Enabled() {
		return
	}
	if data, err := json.MarshalIndent(r.req, "", "  "); err == nil {
		o.sink.SaveRequestJSON(r.asset, data)
	}
}

func (o *Orchestrator) saveLayout(asset string, layout pipeline.LayoutResult) {
	if !o.sink.Enabled() {
		return
	}
	if data, err := json.MarshalIndent(layout, "", "  "); err == nil {
		o.sink.SaveLayoutJSON(asset, data)
	}
}

func (o *Orchestrator) saveCurves(r resolved, size profile.Size, paths []curves.Path) {
	if !o.sink.Enabled() || len(paths) == 0 {
		return
	}
	o.sink.SaveCurvesSVG(r.asset, curves.SVGDocument(size.Width, size.Height, paths, colorutil.ToHex(r.curveColor)))
}

func (o *Orchestrator) saveLayer(asset, name string, img image.Image) {
	if !o.sink.Enabled() || img == nil {
		return
	}
	o.sink.SaveLayer(asset, name, img)
}
