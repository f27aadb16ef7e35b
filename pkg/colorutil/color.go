// Package colorutil converts between hex, RGB and HSL color representations
// and derives lighter or darker shades used by the mockup backgrounds.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a hex color string cannot be parsed.
var ErrInvalidColorFormat = errors.New("invalid color format")

// HSL holds hue, saturation and lightness, each in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := parse(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level constants.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats a color as lowercase "#rrggbb", ignoring alpha.
func ToHex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// RGBToHSL converts 8-bit RGB channels to HSL.
func RGBToHSL(r, g, b uint8) HSL {
	h, s, l := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
	return HSL{H: h / 360, S: s, L: l}
}

// HSLToRGB converts HSL back to 8-bit RGB, rounding each channel.
func HSLToRGB(c HSL) (r, g, b uint8) {
	return fromHSL(c).RGB255()
}

// HexToHSL parses a hex color and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := parse(hex)
	if err != nil {
		return HSL{}, err
	}
	h, s, l := c.Hsl()
	return HSL{H: h / 360, S: s, L: l}, nil
}

// HSLToHex converts HSL to a lowercase "#rrggbb" string.
func HSLToHex(c HSL) string {
	return fromHSL(c).Hex()
}

// Lighten raises the lightness of a hex color by amount, saturating at white.
func Lighten(hex string, amount float64) (string, error) {
	return adjust(hex, func(c *HSL) { c.L = clamp01(c.L + amount) })
}

// Darken lowers the lightness of a hex color by amount, saturating at black.
func Darken(hex string, amount float64) (string, error) {
	return adjust(hex, func(c *HSL) { c.L = clamp01(c.L - amount) })
}

// AdjustSaturation shifts saturation by amount in [-1,1].
func AdjustSaturation(hex string, amount float64) (string, error) {
	return adjust(hex, func(c *HSL) { c.S = clamp01(c.S + amount) })
}

// GradientPair returns the base color and a lighter companion for a two-stop gradient.
func GradientPair(base string, amount float64) (string, string, error) {
	lighter, err := Lighten(base, amount)
	if err != nil {
		return "", "", err
	}
	return base, lighter, nil
}

// ScaleRGB multiplies every channel by factor and truncates, keeping the hue
// roughly intact. Used to derive a darker gradient end from a brand color.
func ScaleRGB(hex string, factor float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	scale := func(v uint8) uint8 { return uint8(math.Max(0, math.Min(255, float64(v)*factor))) }
	return ToHex(color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 255}), nil
}

// parse accepts an optional '#' and surrounding spaces; go-colorful only
// reads the canonical "#rrggbb" and "#rgb" forms and ignores trailing junk.
func parse(s string) (colorful.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if (len(hex) != 6 && len(hex) != 3) || strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	return c, nil
}

func fromHSL(c HSL) colorful.Color {
	return colorful.Hsl(c.H*360, clamp01(c.S), clamp01(c.L)).Clamped()
}

func adjust(hex string, fn func(*HSL)) (string, error) {
	c, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	fn(&c)
	return HSLToHex(c), nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// CurveLightness is the lightness added to the gradient start color to
// derive the decorative curve color.
const CurveLightness = 0.20

// CurveColor returns the accent color used for the decorative curves.
func CurveColor(gradientStart string) (string, error) {
	return Lighten(gradientStart, CurveLightness)
}
