package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/user/storeshots/pkg/pipeline"
)

func TestComputeLayout_StoreCanvases(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		top     int
		mockupH int
		mockupW int
		bottom  int
		padding int
	}{
		{"iphone working", 2000, 4348, 782, 3130, 1800, 434, 100},
		{"iphone final", 1290, 2796, 503, 2013, 1161, 279, 64},
		{"ipad", 2048, 2732, 491, 1967, 1843, 273, 102},
		{"gplay phone", 1080, 1920, 345, 1382, 972, 192, 54},
		{"gplay tablet", 1600, 2560, 460, 1843, 1440, 256, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(pipeline.LayoutInput{CanvasWidth: tt.w, CanvasHeight: tt.h})
			if got.TopSpaceHeight != tt.top {
				t.Errorf("TopSpaceHeight = %d, want %d", got.TopSpaceHeight, tt.top)
			}
			if got.MockupMaxHeight != tt.mockupH {
				t.Errorf("MockupMaxHeight = %d, want %d", got.MockupMaxHeight, tt.mockupH)
			}
			if got.MockupMaxWidth != tt.mockupW {
				t.Errorf("MockupMaxWidth = %d, want %d", got.MockupMaxWidth, tt.mockupW)
			}
			if got.BottomSpaceHeight != tt.bottom {
				t.Errorf("BottomSpaceHeight = %d, want %d", got.BottomSpaceHeight, tt.bottom)
			}
			if got.HorizontalPadding != tt.padding {
				t.Errorf("HorizontalPadding = %d, want %d", got.HorizontalPadding, tt.padding)
			}
		})
	}
}

func TestComputeLayout_Regions(t *testing.T) {
	got := ComputeLayout(pipeline.LayoutInput{CanvasWidth: 1000, CanvasHeight: 2000})

	want := pipeline.Rectangle{X: 50, Y: 360, Width: 900, Height: 1440}
	if got.MockupArea != want {
		t.Errorf("MockupArea = %+v, want %+v", got.MockupArea, want)
	}
	if got.TopArea != (pipeline.Rectangle{X: 0, Y: 0, Width: 1000, Height: 360}) {
		t.Errorf("TopArea = %+v", got.TopArea)
	}
	if got.BottomArea != (pipeline.Rectangle{X: 0, Y: 1800, Width: 1000, Height: 200}) {
		t.Errorf("BottomArea = %+v", got.BottomArea)
	}
	if got.Canvas != (pipeline.Dimension{Width: 1000, Height: 2000}) {
		t.Errorf("Canvas = %+v", got.Canvas)
	}
}

func TestComputeLayout_Idempotent(t *testing.T) {
	input := pipeline.LayoutInput{CanvasWidth: 1290, CanvasHeight: 2796}
	first := ComputeLayout(input)
	for i := 0; i < 3; i++ {
		if got := ComputeLayout(input); got != first {
			t.Fatalf("call %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestComputeLayout_BandsNeverExceedCanvas(t *testing.T) {
	for h := 1; h < 3000; h += 37 {
		got := ComputeLayout(pipeline.LayoutInput{CanvasWidth: 100, CanvasHeight: h})
		if sum := got.TopSpaceHeight + got.MockupMaxHeight + got.BottomSpaceHeight; sum > h {
			t.Fatalf("height %d: bands sum to %d", h, sum)
		}
	}
}

func TestPercentages_Validate(t *testing.T) {
	if err := DefaultPercentages().Validate(); err != nil {
		t.Fatalf("default percentages invalid: %v", err)
	}

	bad := DefaultPercentages()
	bad.BottomSpace = 900
	if err := bad.Validate(); err == nil {
		t.Error("expected error when bands do not sum to 100%")
	}

	bad = DefaultPercentages()
	bad.HorizontalPadding = 5000
	if err := bad.Validate(); err == nil {
		t.Error("expected error for padding covering the whole width")
	}

	if _, err := NewStageWith(bad); err == nil {
		t.Error("NewStageWith accepted invalid percentages")
	}
}

func TestStage_Execute(t *testing.T) {
	stage := NewStage()

	got, err := stage.Execute(context.Background(), pipeline.LayoutInput{CanvasWidth: 2000, CanvasHeight: 4348})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MockupMaxWidth != 1800 || got.MockupMaxHeight != 3130 {
		t.Errorf("mockup box = %dx%d, want 1800x3130", got.MockupMaxWidth, got.MockupMaxHeight)
	}

	_, err = stage.Execute(context.Background(), pipeline.LayoutInput{CanvasWidth: 0, CanvasHeight: 100})
	if !errors.Is(err, pipeline.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}
