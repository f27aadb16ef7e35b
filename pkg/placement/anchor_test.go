package placement

import (
	"image"
	"testing"

	"github.com/user/storeshots/pkg/profile"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		dx, dy int
		want   image.Point
	}{
		{"center", Center, 0, 0, image.Pt(40, 30)},
		{"north with offset", North, 0, 15, image.Pt(40, 15)},
		{"northwest", NorthWest, 6, 9, image.Pt(6, 9)},
		{"east with margin", East, 10, 0, image.Pt(70, 30)},
		{"southeast with padding", SouthEast, 5, 7, image.Pt(75, 53)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(100, 80, 20, 20, tt.anchor, tt.dx, tt.dy)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPlace_Oversized(t *testing.T) {
	// a layer wider than the background overhangs both sides evenly
	got := Place(100, 100, 121, 100, Center, 0, 0)
	if got.X != -11 {
		t.Errorf("expected x=-11, got %d", got.X)
	}
}

func TestTopImageOffset(t *testing.T) {
	base := profile.TopImagePlacement{TopPaddingPercent: 0.05}
	topSpace := 500 // padding 25, available 475

	tests := []struct {
		align profile.VerticalAlign
		h     int
		want  int
	}{
		{profile.AlignTop, 100, 25},
		{profile.AlignBottom, 100, 400},
		{profile.AlignCenter, 100, 212},
		{profile.AlignCenter, 600, 25},
		{profile.AlignBottom, 600, 25},
	}
	for _, tt := range tests {
		p := base
		p.VerticalAlign = tt.align
		if got := TopImageOffset(p, topSpace, tt.h); got != tt.want {
			t.Errorf("%s h=%d: expected %d, got %d", tt.align, tt.h, tt.want, got)
		}
	}
}

func TestBottomLogoPoint(t *testing.T) {
	gp, err := profile.Lookup(profile.GooglePlayPhone)
	if err != nil {
		t.Fatal(err)
	}
	bottomSpace := 192 // 10% of 1920
	maxW, maxH := BottomLogoBox(gp.BottomLogo, 1080, bottomSpace)
	if maxW != 172 || maxH != 96 {
		t.Fatalf("unexpected logo box %dx%d", maxW, maxH)
	}

	pt := BottomLogoPoint(gp.BottomLogo, 1080, 1920, bottomSpace, 172, 43)
	// right padding 32, bottom padding 15
	if pt.X != 1080-172-32 || pt.Y != 1920-43-15 {
		t.Errorf("unexpected logo position %v", pt)
	}
}

func TestTopImageBox(t *testing.T) {
	ipad, _ := profile.Lookup(profile.IPad)
	w, h := TopImageBox(ipad.TopImage, 2048, 491)
	if w != 1740 || h != 451 {
		t.Errorf("expected 1740x451, got %dx%d", w, h)
	}
}
