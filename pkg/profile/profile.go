// Package profile holds the static table of target device profiles: output
// resolutions, corner radii, shadows and overlay placement rules for every
// store asset the pipeline can produce.
package profile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedDeviceProfile is returned for keys that are not in the table.
var ErrUnsupportedDeviceProfile = errors.New("unsupported device profile")

// Kind identifies a target device profile.
type Kind int

const (
	IPhone Kind = iota
	IPad
	GooglePlayPhone
	GooglePlayTablet
	FeatureGraphic
)

// String returns the canonical registry key.
func (k Kind) String() string {
	switch k {
	case IPhone:
		return "iphone"
	case IPad:
		return "ipad"
	case GooglePlayPhone:
		return "gplay_phone"
	case GooglePlayTablet:
		return "gplay_tablet"
	case FeatureGraphic:
		return "feature_graphic"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind resolves a profile key. Unknown keys are an error; there is no
// fallback to a default device.
func ParseKind(key string) (Kind, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(key))
	switch normalized {
	case "iphone":
		return IPhone, nil
	case "ipad":
		return IPad, nil
	case "gplayphone", "googleplayphone":
		return GooglePlayPhone, nil
	case "gplaytablet", "googleplaytablet":
		return GooglePlayTablet, nil
	case "featuregraphic":
		return FeatureGraphic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDeviceProfile, key)
}

// MarshalText encodes the kind as its registry key.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a registry key, so profile lists can be read from
// config files.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Size is a pixel width and height.
type Size struct {
	Width  int
	Height int
}

// Shadow describes a drop shadow: opacity in [0,1], Gaussian sigma in pixels
// and the offset of the shadow relative to its subject.
type Shadow struct {
	Opacity float64
	Sigma   float64
	OffsetX int
	OffsetY int
}

// VerticalAlign positions a top image inside the reserved top space.
type VerticalAlign string

const (
	AlignTop    VerticalAlign = "top"
	AlignCenter VerticalAlign = "center"
	AlignBottom VerticalAlign = "bottom"
)

// TopImagePlacement constrains the marketing image drawn above the subject.
// MaxWidthPercent is relative to the canvas width, the remaining percentages
// to the top space height.
type TopImagePlacement struct {
	MaxWidthPercent   float64
	MaxHeightPercent  float64
	VerticalAlign     VerticalAlign
	TopPaddingPercent float64
}

// BottomLogoPlacement constrains the logo drawn in the bottom-right corner.
// Width and right padding are relative to the canvas width, height and bottom
// padding to the bottom space height.
type BottomLogoPlacement struct {
	MaxWidthPercent      float64
	MaxHeightPercent     float64
	RightPaddingPercent  float64
	BottomPaddingPercent float64
}

// Banner holds the horizontal composition used by the Feature Graphic.
type Banner struct {
	PhoneHeightRatio      float64
	PhoneAspect           float64
	PhoneRotation         float64 // degrees, clockwise
	PhoneRightMarginRatio float64
	PhoneCornerRadius     int
	TextLeftMarginRatio   float64
	TextTopMarginRatio    float64
	TextSizeRatio         float64
	LineHeightRatio       float64
	LogoMaxHeightRatio    float64
	LogoTopMarginRatio    float64
	DefaultTextColor      string
	DefaultTextLines      []string
}

// Profile is the immutable record of one target device.
type Profile struct {
	Kind        Kind
	Name        string
	Final       Size // mandated output resolution
	Working     Size // canvas used while assembling, resized to Final at the end
	AspectRatio float64
	// CornerRadius is expressed in source pixels for the device-frame path and
	// in subject pixels for the crop path.
	CornerRadius    int
	Shadow          Shadow
	ShadowMargin    int
	StatusBarOffset int
	// UsesDeviceFrame marks profiles whose input is an already-framed mockup
	// rather than a raw screenshot that has to be cropped.
	UsesDeviceFrame bool
	TopImage        TopImagePlacement
	BottomLogo      BottomLogoPlacement
	Banner          *Banner
	OutputDir       string
}

// Source-device constants shared by several profiles.
const (
	StatusBarOffsetPixels = 180
	WorkingCanvasWidth    = 2000
	WorkingCanvasHeight   = 4348
	shadowMargin          = 100

	iphoneScreenWidth    = 1290
	iphoneCornerPoints   = 55
	iphoneScale          = 3
	iphoneCornerRadiusPx = iphoneCornerPoints * iphoneScale
	mockupScreenWidth    = 1512 - 108
	storeCornerRadius    = 40
	featureCornerRadius  = 25
	featurePhoneRotation = 15
	featureGraphicWidth  = 1024
	featureGraphicHeight = 500
)

// MockupCornerRadius is the device corner radius scaled to the mockup
// frame's screen area (165px * 1404/1290, truncated).
const MockupCornerRadius = iphoneCornerRadiusPx * mockupScreenWidth / iphoneScreenWidth

// DefaultBannerText is the promotional copy used when none is supplied.
var DefaultBannerText = []string{
	"Acumule pontos",
	"e troque por",
	"recompensas!",
}

var table = map[Kind]Profile{
	IPhone: {
		Kind:            IPhone,
		Name:            "iPhone 6.7\"",
		Final:           Size{Width: 1290, Height: 2796},
		Working:         Size{Width: WorkingCanvasWidth, Height: WorkingCanvasHeight},
		AspectRatio:     1290.0 / 2796.0,
		CornerRadius:    MockupCornerRadius,
		Shadow:          Shadow{Opacity: 0.70, Sigma: 35, OffsetX: 0, OffsetY: 40},
		ShadowMargin:    shadowMargin,
		StatusBarOffset: StatusBarOffsetPixels,
		UsesDeviceFrame: true,
		TopImage:        TopImagePlacement{MaxWidthPercent: 1.0, MaxHeightPercent: 0.95, VerticalAlign: AlignCenter, TopPaddingPercent: 0.05},
		BottomLogo:      BottomLogoPlacement{MaxWidthPercent: 0.30, MaxHeightPercent: 0.80, RightPaddingPercent: 0.03, BottomPaddingPercent: 0.10},
		OutputDir:       "iphone_6_7",
	},
	IPad: {
		Kind:            IPad,
		Name:            "iPad Pro 12.9\"",
		Final:           Size{Width: 2048, Height: 2732},
		Working:         Size{Width: 2048, Height: 2732},
		AspectRatio:     2048.0 / 2732.0,
		CornerRadius:    storeCornerRadius,
		Shadow:          Shadow{Opacity: 0.50, Sigma: 50, OffsetX: 0, OffsetY: 20},
		ShadowMargin:    shadowMargin,
		StatusBarOffset: StatusBarOffsetPixels,
		TopImage:        TopImagePlacement{MaxWidthPercent: 0.85, MaxHeightPercent: 0.92, VerticalAlign: AlignCenter, TopPaddingPercent: 0.05},
		BottomLogo:      BottomLogoPlacement{MaxWidthPercent: 0.16, MaxHeightPercent: 0.55, RightPaddingPercent: 0.025, BottomPaddingPercent: 0.08},
		OutputDir:       "ipad_12_9",
	},
	GooglePlayPhone: {
		Kind:            GooglePlayPhone,
		Name:            "Google Play phone",
		Final:           Size{Width: 1080, Height: 1920},
		Working:         Size{Width: 1080, Height: 1920},
		AspectRatio:     1080.0 / 1920.0,
		CornerRadius:    storeCornerRadius,
		Shadow:          Shadow{Opacity: 0.50, Sigma: 50, OffsetX: 0, OffsetY: 20},
		ShadowMargin:    shadowMargin,
		StatusBarOffset: StatusBarOffsetPixels,
		TopImage:        TopImagePlacement{MaxWidthPercent: 0.98, MaxHeightPercent: 0.92, VerticalAlign: AlignCenter, TopPaddingPercent: 0.05},
		BottomLogo:      BottomLogoPlacement{MaxWidthPercent: 0.16, MaxHeightPercent: 0.50, RightPaddingPercent: 0.03, BottomPaddingPercent: 0.08},
		OutputDir:       "gplay_phone",
	},
	GooglePlayTablet: {
		Kind:            GooglePlayTablet,
		Name:            "Google Play tablet",
		Final:           Size{Width: 1600, Height: 2560},
		Working:         Size{Width: 1600, Height: 2560},
		AspectRatio:     1600.0 / 2560.0,
		CornerRadius:    storeCornerRadius,
		Shadow:          Shadow{Opacity: 0.50, Sigma: 50, OffsetX: 0, OffsetY: 20},
		ShadowMargin:    shadowMargin,
		StatusBarOffset: StatusBarOffsetPixels,
		TopImage:        TopImagePlacement{MaxWidthPercent: 0.88, MaxHeightPercent: 0.92, VerticalAlign: AlignCenter, TopPaddingPercent: 0.05},
		BottomLogo:      BottomLogoPlacement{MaxWidthPercent: 0.14, MaxHeightPercent: 0.50, RightPaddingPercent: 0.025, BottomPaddingPercent: 0.08},
		OutputDir:       "gplay_tablet",
	},
	FeatureGraphic: {
		Kind:            FeatureGraphic,
		Name:            "Google Play feature graphic",
		Final:           Size{Width: featureGraphicWidth, Height: featureGraphicHeight},
		Working:         Size{Width: featureGraphicWidth, Height: featureGraphicHeight},
		AspectRatio:     0.46,
		CornerRadius:    featureCornerRadius,
		Shadow:          Shadow{Opacity: 0.40, Sigma: 20, OffsetX: 15, OffsetY: 25},
		ShadowMargin:    shadowMargin,
		StatusBarOffset: StatusBarOffsetPixels,
		Banner: &Banner{
			PhoneHeightRatio:      0.95,
			PhoneAspect:           0.46,
			PhoneRotation:         -featurePhoneRotation,
			PhoneRightMarginRatio: 0.08,
			PhoneCornerRadius:     featureCornerRadius,
			TextLeftMarginRatio:   0.06,
			TextTopMarginRatio:    0.45,
			TextSizeRatio:         0.09,
			LineHeightRatio:       1.3,
			LogoMaxHeightRatio:    0.25,
			LogoTopMarginRatio:    0.15,
			DefaultTextColor:      "#ffffff",
			DefaultTextLines:      DefaultBannerText,
		},
		OutputDir: "feature_graphic",
	},
}

// Lookup returns the profile for kind.
func Lookup(kind Kind) (Profile, error) {
	p, ok := table[kind]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnsupportedDeviceProfile, kind)
	}
	return p, nil
}

// LookupKey parses key and returns its profile.
func LookupKey(key string) (Profile, error) {
	kind, err := ParseKind(key)
	if err != nil {
		return Profile{}, err
	}
	return Lookup(kind)
}

// All returns every profile ordered by kind.
func All() []Profile {
	profiles := make([]Profile, 0, len(table))
	for _, p := range table {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Kind < profiles[j].Kind })
	return profiles
}

// StoreKinds returns the portrait screenshot profiles (everything except the banner).
func StoreKinds() []Kind {
	return []Kind{IPhone, IPad, GooglePlayPhone, GooglePlayTablet}
}
