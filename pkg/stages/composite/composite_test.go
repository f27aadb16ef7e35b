package composite

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/storeshots/pkg/adapters/logger"
	"github.com/user/storeshots/pkg/mocks"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/profile"
	"github.com/user/storeshots/pkg/stages/layout"
)

func iphoneInput(t *testing.T) pipeline.CompositeInput {
	t.Helper()
	p, err := profile.Lookup(profile.IPhone)
	if err != nil {
		t.Fatal(err)
	}
	l := layout.ComputeLayout(pipeline.LayoutInput{CanvasWidth: p.Working.Width, CanvasHeight: p.Working.Height})
	return pipeline.CompositeInput{
		Background:    image.NewRGBA(image.Rect(0, 0, p.Working.Width, p.Working.Height)),
		Subject:       image.NewRGBA(image.Rect(0, 0, 1000, 3000)),
		Layout:        l,
		LogoPlacement: p.BottomLogo,
		Final:         pipeline.Dimension{Width: p.Final.Width, Height: p.Final.Height},
	}
}

func TestStage_Execute_IPhone(t *testing.T) {
	var resized []image.Point
	renderer := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			resized = append(resized, image.Pt(width, height))
			return image.NewRGBA(image.Rect(0, 0, width, height))
		},
	}
	stage := NewStage(renderer, logger.NewNoop())

	input := iphoneInput(t)
	input.BottomLogo = image.NewRGBA(image.Rect(0, 0, 600, 200))

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := (pipeline.Rectangle{X: 500, Y: 782, Width: 1000, Height: 3000}); result.SubjectBounds != want {
		t.Errorf("subject bounds = %+v, want %+v", result.SubjectBounds, want)
	}
	if want := (pipeline.Rectangle{X: 1340, Y: 4105, Width: 600, Height: 200}); result.LogoBounds != want {
		t.Errorf("logo bounds = %+v, want %+v", result.LogoBounds, want)
	}

	// the logo already fits, only the final resize happens
	if len(resized) != 1 || resized[0] != image.Pt(1290, 2796) {
		t.Errorf("resizes = %v, want [(1290,2796)]", resized)
	}
	if got := result.Image.Bounds().Size(); got != image.Pt(1290, 2796) {
		t.Errorf("final size = %v", got)
	}

	canvas := renderer.Canvases[0]
	if len(canvas.Draws) != 3 {
		t.Fatalf("expected background, subject and logo draws, got %d", len(canvas.Draws))
	}
	if canvas.Draws[0].X != 0 || canvas.Draws[0].Y != 0 {
		t.Errorf("background drawn at (%d,%d)", canvas.Draws[0].X, canvas.Draws[0].Y)
	}
}

func TestStage_Execute_LogoScaledDown(t *testing.T) {
	var resized []image.Point
	renderer := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			resized = append(resized, image.Pt(width, height))
			return image.NewRGBA(image.Rect(0, 0, width, height))
		},
	}
	stage := NewStage(renderer, logger.NewNoop())

	input := iphoneInput(t)
	input.BottomLogo = image.NewRGBA(image.Rect(0, 0, 1200, 400))

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resized) != 2 || resized[0] != image.Pt(600, 200) {
		t.Errorf("resizes = %v, want logo (600,200) then final", resized)
	}
	if result.LogoBounds.Width != 600 || result.LogoBounds.Height != 200 {
		t.Errorf("logo bounds = %+v", result.LogoBounds)
	}
}

func TestStage_Execute_NoResizeAtFinalSize(t *testing.T) {
	resizes := 0
	renderer := &mocks.Renderer{
		ResizeImageFunc: func(img image.Image, width, height int) image.Image {
			resizes++
			return img
		},
	}
	stage := NewStage(renderer, logger.NewNoop())

	l := layout.ComputeLayout(pipeline.LayoutInput{CanvasWidth: 1080, CanvasHeight: 1920})
	input := pipeline.CompositeInput{
		Background: image.NewRGBA(image.Rect(0, 0, 1080, 1920)),
		Subject:    image.NewRGBA(image.Rect(0, 0, 877, 1482)),
		Layout:     l,
		Final:      pipeline.Dimension{Width: 1080, Height: 1920},
	}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resizes != 0 {
		t.Errorf("expected no resize, got %d", resizes)
	}
	// (1080-877)/2 floors to 101
	if result.SubjectBounds.X != 101 || result.SubjectBounds.Y != 345 {
		t.Errorf("subject at (%d,%d), want (101,345)", result.SubjectBounds.X, result.SubjectBounds.Y)
	}
	if result.LogoBounds != (pipeline.Rectangle{}) {
		t.Errorf("no logo expected, got %+v", result.LogoBounds)
	}
}

func TestStage_Execute_SubjectWithOffsetBounds(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer, logger.NewNoop())

	input := iphoneInput(t)
	input.Subject = image.NewRGBA(image.Rect(10, 20, 1010, 3020))

	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drawn := renderer.Canvases[0].Draws[1].Image
	if drawn.Bounds().Min != (image.Point{}) {
		t.Errorf("subject drawn with origin %v, want (0,0)", drawn.Bounds().Min)
	}
}

func TestStage_Execute_Errors(t *testing.T) {
	stage := NewStage(&mocks.Renderer{}, logger.NewNoop())

	input := iphoneInput(t)
	input.Subject = nil
	if _, err := stage.Execute(context.Background(), input); !errors.Is(err, pipeline.ErrRasterEngine) {
		t.Errorf("missing subject: expected ErrRasterEngine, got %v", err)
	}

	input = iphoneInput(t)
	input.Background = image.NewRGBA(image.Rect(0, 0, 100, 100))
	if _, err := stage.Execute(context.Background(), input); !errors.Is(err, pipeline.ErrRasterEngine) {
		t.Errorf("size mismatch: expected ErrRasterEngine, got %v", err)
	}
}
