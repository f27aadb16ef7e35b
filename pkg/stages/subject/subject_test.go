package subject

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/storeshots/pkg/adapters/ggrenderer"
	"github.com/user/storeshots/pkg/adapters/logger"
	"github.com/user/storeshots/pkg/mocks"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/profile"
	"github.com/user/storeshots/pkg/stages/layout"
)

// recorder captures the renderer calls made by the stage.
type recorder struct {
	crops   []image.Rectangle
	resizes []image.Point
	radii   []int
	shadows []ports.Shadow
	margins []int
}

func (r *recorder) renderer() *mocks.Renderer {
	return &mocks.Renderer{
		CropImageFunc: func(img image.Image, rect image.Rectangle) image.Image {
			r.crops = append(r.crops, rect)
			return image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
		},
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			r.resizes = append(r.resizes, image.Pt(width, height))
			return image.NewRGBA(image.Rect(0, 0, width, height))
		},
		RoundCornersFunc: func(img image.Image, radius int) image.Image {
			r.radii = append(r.radii, radius)
			return img
		},
		ApplyShadowFunc: func(img image.Image, shadow ports.Shadow, margin int) image.Image {
			r.shadows = append(r.shadows, shadow)
			r.margins = append(r.margins, margin)
			b := img.Bounds()
			return image.NewRGBA(image.Rect(0, 0, b.Dx()+margin, b.Dy()+margin))
		},
	}
}

func inputFor(t *testing.T, kind profile.Kind, srcW, srcH int) pipeline.SubjectInput {
	t.Helper()
	p, err := profile.Lookup(kind)
	if err != nil {
		t.Fatalf("lookup %s: %v", kind, err)
	}
	return pipeline.SubjectInput{
		Source:  image.NewRGBA(image.Rect(0, 0, srcW, srcH)),
		Profile: p,
		Layout:  layout.ComputeLayout(pipeline.LayoutInput{CanvasWidth: p.Working.Width, CanvasHeight: p.Working.Height}),
	}
}

func TestStage_CropPath_WidthUnconstrained(t *testing.T) {
	rec := &recorder{}
	stage := NewStage(rec.renderer(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), inputFor(t, profile.GooglePlayPhone, 1080, 2400))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.crops) != 1 || rec.crops[0] != image.Rect(0, 180, 1080, 2100) {
		t.Errorf("crop = %v, want [(0,180)-(1080,2100)]", rec.crops)
	}
	if len(rec.resizes) != 1 || rec.resizes[0] != image.Pt(777, 1382) {
		t.Errorf("resize = %v, want [(777,1382)]", rec.resizes)
	}
	if len(rec.radii) != 1 || rec.radii[0] != 40 {
		t.Errorf("radius = %v, want [40]", rec.radii)
	}
	wantShadow := ports.Shadow{Opacity: 0.50, Sigma: 50, OffsetX: 0, OffsetY: 20}
	if len(rec.shadows) != 1 || rec.shadows[0] != wantShadow {
		t.Errorf("shadow = %+v, want %+v", rec.shadows, wantShadow)
	}
	if rec.margins[0] != 100 {
		t.Errorf("margin = %d, want 100", rec.margins[0])
	}

	if got := result.Shadowed.Bounds().Size(); got != image.Pt(877, 1482) {
		t.Errorf("shadowed size = %v, want (877,1482)", got)
	}
	if got := result.Rounded.Bounds().Size(); got != image.Pt(777, 1382) {
		t.Errorf("rounded size = %v, want (777,1382)", got)
	}
	if result.Crop != (pipeline.Rectangle{X: 0, Y: 180, Width: 1080, Height: 1920}) {
		t.Errorf("crop result = %+v", result.Crop)
	}
}

func TestStage_CropPath_HeightConstrained(t *testing.T) {
	rec := &recorder{}
	stage := NewStage(rec.renderer(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), inputFor(t, profile.IPad, 1080, 1500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.crops) != 1 || rec.crops[0] != image.Rect(45, 180, 1034, 1500) {
		t.Errorf("crop = %v, want [(45,180)-(1034,1500)]", rec.crops)
	}
}

func TestStage_CropPath_SourceTooShort(t *testing.T) {
	rec := &recorder{}
	stage := NewStage(rec.renderer(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), inputFor(t, profile.IPad, 1080, 150))
	if !errors.Is(err, pipeline.ErrRasterEngine) {
		t.Fatalf("expected ErrRasterEngine, got %v", err)
	}
	if len(rec.shadows) != 0 {
		t.Error("shadow should not be computed after a failed crop")
	}
}

func TestStage_DeviceFrame_AlreadyFits(t *testing.T) {
	rec := &recorder{}
	stage := NewStage(rec.renderer(), logger.NewNoop())

	result, err := stage.Execute(context.Background(), inputFor(t, profile.IPhone, 1512, 3000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.crops) != 0 {
		t.Errorf("device frames must not be cropped, got %v", rec.crops)
	}
	if len(rec.resizes) != 0 {
		t.Errorf("mockup inside the box must not be resized, got %v", rec.resizes)
	}
	if len(rec.radii) != 1 || rec.radii[0] != profile.MockupCornerRadius {
		t.Errorf("radius = %v, want [%d]", rec.radii, profile.MockupCornerRadius)
	}
	wantShadow := ports.Shadow{Opacity: 0.70, Sigma: 35, OffsetX: 0, OffsetY: 40}
	if rec.shadows[0] != wantShadow {
		t.Errorf("shadow = %+v, want %+v", rec.shadows[0], wantShadow)
	}
	if got := result.Shadowed.Bounds().Size(); got != image.Pt(1612, 3100) {
		t.Errorf("shadowed size = %v", got)
	}
}

func TestStage_DeviceFrame_Downscaled(t *testing.T) {
	rec := &recorder{}
	stage := NewStage(rec.renderer(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), inputFor(t, profile.IPhone, 1600, 6260))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.resizes) != 1 || rec.resizes[0] != image.Pt(800, 3130) {
		t.Errorf("resize = %v, want [(800,3130)]", rec.resizes)
	}
}

func TestStage_MissingSource(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, logger.NewNoop())

	input := inputFor(t, profile.IPad, 100, 100)
	input.Source = nil
	_, err := stage.Execute(context.Background(), input)
	if !errors.Is(err, pipeline.ErrImageDecode) {
		t.Errorf("expected ErrImageDecode, got %v", err)
	}
}

func TestStage_CancelledContext(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := stage.Execute(ctx, inputFor(t, profile.IPad, 1080, 2400))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// TestStage_CropPath_OffsetSource feeds a sub-image whose bounds do not start
// at the origin through the real renderer.
func TestStage_CropPath_OffsetSource(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping raster test in short mode")
	}

	green := color.NRGBA{G: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	parent := image.NewNRGBA(image.Rect(0, 0, 1790, 3296))
	for y := 0; y < 3296; y++ {
		for x := 0; x < 1790; x++ {
			parent.SetNRGBA(x, y, blue)
		}
	}
	src := parent.SubImage(image.Rect(500, 500, 1790, 3296)).(*image.NRGBA)
	for y := 500; y < 3296; y++ {
		for x := 500; x < 800; x++ {
			src.SetNRGBA(x, y, green)
		}
	}

	input := inputFor(t, profile.GooglePlayPhone, 1290, 2796)
	input.Source = src

	result, err := NewStage(ggrenderer.New(), logger.NewNoop()).Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := pipeline.Rectangle{X: 0, Y: 180, Width: 1290, Height: 2293}
	if result.Crop != want {
		t.Errorf("crop = %+v, want %+v", result.Crop, want)
	}

	b := result.Rounded.Bounds()
	if b.Dx() != 777 || b.Dy() != 1382 {
		t.Fatalf("subject = %dx%d, want 777x1382", b.Dx(), b.Dy())
	}
	r, g, bl, _ := result.Rounded.At(b.Min.X+20, b.Min.Y+b.Dy()/2).RGBA()
	if g>>8 < 200 || r>>8 > 50 || bl>>8 > 50 {
		t.Errorf("left edge should come from the green columns, got (%d,%d,%d)", r>>8, g>>8, bl>>8)
	}
	r, g, bl, _ = result.Rounded.At(b.Max.X-20, b.Min.Y+b.Dy()/2).RGBA()
	if bl>>8 < 200 || g>>8 > 50 {
		t.Errorf("right edge should be blue, got (%d,%d,%d)", r>>8, g>>8, bl>>8)
	}
}
