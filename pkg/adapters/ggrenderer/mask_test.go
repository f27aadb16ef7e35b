package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/user/storeshots/pkg/ports"
)

func TestCornerMask(t *testing.T) {
	mask := CornerMask(200, 300, 40)

	corners := []image.Point{{0, 0}, {199, 0}, {0, 299}, {199, 299}}
	for _, p := range corners {
		if v := mask.GrayAt(p.X, p.Y).Y; v != 0 {
			t.Errorf("corner %v: expected 0, got %d", p, v)
		}
	}
	inside := []image.Point{{100, 150}, {100, 0}, {0, 150}, {199, 150}, {40, 40}}
	for _, p := range inside {
		if v := mask.GrayAt(p.X, p.Y).Y; v != 255 {
			t.Errorf("point %v: expected 255, got %d", p, v)
		}
	}
}

func TestCornerMask_AntiAliased(t *testing.T) {
	mask := CornerMask(200, 200, 40)

	// along the diagonal the arc crosses near (11.7, 11.7); values ramp
	partial := 0
	for i := 5; i < 20; i++ {
		if v := mask.GrayAt(i, i).Y; v > 0 && v < 255 {
			partial++
		}
	}
	if partial < 2 {
		t.Errorf("expected a soft edge, found %d partial pixels", partial)
	}
}

func TestAntiAliasKernel(t *testing.T) {
	var sum float64
	for _, v := range antiAliasKernel {
		sum += v
	}
	if sum != 256 {
		t.Errorf("kernel sum = %v, want 256", sum)
	}
	// outer product of 1 4 6 4 1
	checks := map[int]float64{0: 1, 1: 4, 2: 6, 7: 16, 12: 36, 24: 1}
	for i, want := range checks {
		if antiAliasKernel[i] != want {
			t.Errorf("kernel[%d] = %v, want %v", i, antiAliasKernel[i], want)
		}
	}
}

func TestCornerMask_RadiusTooLarge(t *testing.T) {
	mask := CornerMask(50, 80, 50)
	for _, v := range mask.Pix {
		if v != 255 {
			t.Fatal("expected an unclipped mask when radius >= min(w, h)")
		}
	}
}

func TestRoundCorners(t *testing.T) {
	r := New()
	rounded := r.RoundCorners(solid(120, 200, red), 40)

	if a := alphaAt(rounded, 0, 0); a != 0 {
		t.Errorf("expected transparent corner, got %d", a)
	}
	if a := alphaAt(rounded, 60, 100); a != 255 {
		t.Errorf("expected opaque center, got %d", a)
	}
	if r, _, _, _ := rounded.At(60, 100).RGBA(); r>>8 != 255 {
		t.Error("expected color to be preserved")
	}
}

func TestRoundCorners_SmallRadiusUnchanged(t *testing.T) {
	src := solid(10, 10, red)
	for _, radius := range []int{0, 1} {
		if out := New().RoundCorners(src, radius); out != image.Image(src) {
			t.Errorf("radius %d: expected the input image back", radius)
		}
	}
}

func TestRoundCorners_Idempotent(t *testing.T) {
	r := New()
	once := r.RoundCorners(solid(90, 160, red), 25).(*image.NRGBA)
	twice := r.RoundCorners(once, 25).(*image.NRGBA)

	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("expected applying the mask twice to match applying it once")
	}
}

func TestRoundCorners_PreservesExistingAlpha(t *testing.T) {
	src := solid(100, 100, color.NRGBA{R: 255, A: 100})
	out := New().RoundCorners(src, 10)
	if a := alphaAt(out, 50, 50); a != 100 {
		t.Errorf("expected alpha 100 in the middle, got %d", a)
	}
}

func TestApplyShadow(t *testing.T) {
	r := New()
	subject := solid(100, 200, red)
	shadow := ports.Shadow{Opacity: 0.5, Sigma: 20, OffsetX: 0, OffsetY: 20}

	out := r.ApplyShadow(subject, shadow, 100)
	b := out.Bounds()
	if b.Dx() != 200 || b.Dy() != 300 {
		t.Fatalf("expected 200x300, got %dx%d", b.Dx(), b.Dy())
	}

	// subject sits in the middle, unchanged
	if r, _, _, a := out.At(100, 150).RGBA(); r>>8 != 255 || a>>8 != 255 {
		t.Error("expected opaque subject in the center")
	}
	// shadow shows below the subject, not beyond half opacity
	a := alphaAt(out, 100, 255)
	if a == 0 || a > 128 {
		t.Errorf("expected soft shadow below subject, got alpha %d", a)
	}
	// the far corner stays clear
	if a := alphaAt(out, 0, 0); a > 8 {
		t.Errorf("expected near-transparent corner, got alpha %d", a)
	}
}

func TestApplyShadow_ZeroSigma(t *testing.T) {
	out := New().ApplyShadow(solid(10, 10, red), ports.Shadow{Opacity: 1, OffsetX: 6, OffsetY: 0}, 20)
	// hard black shadow peeks out on the right
	if r, _, _, a := out.At(25, 15).RGBA(); r != 0 || a>>8 != 255 {
		t.Error("expected hard black shadow edge")
	}
}
