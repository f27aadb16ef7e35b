package placement

import (
	"image"

	"github.com/user/storeshots/pkg/profile"
)

// Anchor selects the reference point used to position a layer, with the
// same meaning as gravity in common raster tools: offsets move the layer
// away from the anchored edge.
type Anchor int

const (
	Center Anchor = iota
	North
	NorthWest
	East
	SouthEast
)

// Place returns the top-left position of a fgW x fgH layer on a bgW x bgH
// background.
func Place(bgW, bgH, fgW, fgH int, anchor Anchor, dx, dy int) image.Point {
	centerX := floorDiv(bgW-fgW, 2)
	centerY := floorDiv(bgH-fgH, 2)

	switch anchor {
	case North:
		return image.Pt(centerX+dx, dy)
	case NorthWest:
		return image.Pt(dx, dy)
	case East:
		return image.Pt(bgW-fgW-dx, centerY+dy)
	case SouthEast:
		return image.Pt(bgW-fgW-dx, bgH-fgH-dy)
	default:
		return image.Pt(centerX+dx, centerY+dy)
	}
}

// TopImageBox returns the maximum size of the top image.
func TopImageBox(p profile.TopImagePlacement, canvasW, topSpace int) (int, int) {
	return int(float64(canvasW) * p.MaxWidthPercent), int(float64(topSpace) * p.MaxHeightPercent)
}

// TopImageOffset returns the vertical offset of a top image of height h
// inside the top space.
func TopImageOffset(p profile.TopImagePlacement, topSpace, h int) int {
	padding := int(float64(topSpace) * p.TopPaddingPercent)
	remaining := topSpace - padding - h

	switch p.VerticalAlign {
	case profile.AlignTop:
		return padding
	case profile.AlignBottom:
		return padding + max(0, remaining)
	default:
		return padding + max(0, floorDiv(remaining, 2))
	}
}

// BottomLogoBox returns the maximum size of the bottom logo.
func BottomLogoBox(p profile.BottomLogoPlacement, canvasW, bottomSpace int) (int, int) {
	return int(float64(canvasW) * p.MaxWidthPercent), int(float64(bottomSpace) * p.MaxHeightPercent)
}

// BottomLogoPoint returns the top-left position of a logo of size (w, h),
// anchored to the bottom-right corner with the profile's padding.
func BottomLogoPoint(p profile.BottomLogoPlacement, canvasW, canvasH, bottomSpace, w, h int) image.Point {
	right := int(float64(canvasW) * p.RightPaddingPercent)
	bottom := int(float64(bottomSpace) * p.BottomPaddingPercent)
	return Place(canvasW, canvasH, w, h, SouthEast, right, bottom)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
