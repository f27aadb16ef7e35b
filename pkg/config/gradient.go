package config

import (
	"fmt"
	"strings"

	"github.com/user/storeshots/pkg/colorutil"
)

// Gradient is a resolved pair of background colors.
type Gradient struct {
	Name  string
	Start string
	End   string
}

// PrimaryDarkenFactor derives the gradient end from a brand color.
const PrimaryDarkenFactor = 0.7

// DefaultPreset is used when neither colors nor a preset are configured.
const DefaultPreset = "premium_purple"

// Presets lists the built-in gradient styles in menu order.
var Presets = []Gradient{
	{Name: "premium_purple", Start: "#667eea", End: "#764ba2"},
	{Name: "ocean_blue", Start: "#4facfe", End: "#00f2fe"},
	{Name: "sunset_orange", Start: "#fa709a", End: "#fee140"},
	{Name: "fresh_green", Start: "#0ba360", End: "#3cba92"},
	{Name: "dark_purple", Start: "#2d3436", End: "#6c5ce7"},
	{Name: "bold_red_pink", Start: "#f093fb", End: "#f5576c"},
}

// Preset returns the named gradient. Names are matched case-insensitively
// and may use dashes instead of underscores.
func Preset(name string) (Gradient, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, g := range Presets {
		if g.Name == key {
			return g, nil
		}
	}
	return Gradient{}, fmt.Errorf("unknown gradient preset %q", name)
}

// FromPrimary builds a gradient from a brand color to the same color with
// every channel scaled by PrimaryDarkenFactor.
func FromPrimary(primary string) (Gradient, error) {
	start, err := NormalizeColor(primary)
	if err != nil {
		return Gradient{}, err
	}
	end, err := colorutil.ScaleRGB(start, PrimaryDarkenFactor)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{Name: "primary", Start: start, End: end}, nil
}
