package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/storeshots/pkg/colorutil"
	"github.com/user/storeshots/pkg/curves"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/profile"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect converts the rectangle to an image.Rectangle.
func (r Rectangle) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// RectangleFrom converts an image.Rectangle.
func RectangleFrom(r image.Rectangle) Rectangle {
	return Rectangle{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// ShadowFromProfile converts a profile shadow to renderer parameters.
func ShadowFromProfile(s profile.Shadow) ports.Shadow {
	return ports.Shadow{Opacity: s.Opacity, Sigma: s.Sigma, OffsetX: s.OffsetX, OffsetY: s.OffsetY}
}

// =============================================================================
// Asset Request
// =============================================================================

// AssetRequest is one unit of work: a source screenshot rendered for a
// single device profile.
type AssetRequest struct {
	SourcePath     string
	Profile        profile.Kind
	GradientStart  string
	GradientEnd    string
	TopImagePath   string // optional
	BottomLogoPath string // optional; used as the banner logo for the Feature Graphic
	Seed           string // empty derives the seed from the source file name
	TextLines      []string
	TextColor      string
	FontPath       string // optional TrueType font for banner text
	OutputPath     string
}

// Validate checks colors and profile before any raster work starts.
func (r AssetRequest) Validate() error {
	if r.SourcePath == "" {
		return fmt.Errorf("%w: source path is required", ErrInvalidRequest)
	}
	if r.OutputPath == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidRequest)
	}
	if _, err := profile.Lookup(r.Profile); err != nil {
		return err
	}
	for _, c := range []string{r.GradientStart, r.GradientEnd} {
		if _, err := colorutil.ParseHex(c); err != nil {
			return err
		}
	}
	if r.TextColor != "" {
		if _, err := colorutil.ParseHex(r.TextColor); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveSeed returns the curve seed for the request. Screenshots default
// to their file stem; the Feature Graphic falls back to a timestamp.
func (r AssetRequest) EffectiveSeed(now time.Time) string {
	if r.Seed != "" {
		return r.Seed
	}
	if r.Profile == profile.FeatureGraphic {
		return fmt.Sprintf("feature_graphic_%d", now.UnixMilli())
	}
	base := filepath.Base(r.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Name returns a short label used in logs and reports.
func (r AssetRequest) Name() string {
	return fmt.Sprintf("%s [%s]", filepath.Base(r.SourcePath), r.Profile)
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains the canvas to divide.
type LayoutInput struct {
	CanvasWidth  int
	CanvasHeight int
}

// LayoutResult holds the pixel regions of a portrait mockup canvas.
type LayoutResult struct {
	Canvas            Dimension
	TopSpaceHeight    int
	MockupMaxHeight   int
	MockupMaxWidth    int
	BottomSpaceHeight int
	HorizontalPadding int

	TopArea    Rectangle
	MockupArea Rectangle
	BottomArea Rectangle
}

// =============================================================================
// Subject Stage Types
// =============================================================================

// SubjectInput is the decoded source screenshot (or framed mockup) and the
// box it has to fit in.
type SubjectInput struct {
	Source  image.Image
	Profile profile.Profile
	Layout  LayoutResult
}

// SubjectResult holds the processed subject layers.
type SubjectResult struct {
	// Rounded is the cropped or fitted subject with rounded corners.
	Rounded image.Image
	// Shadowed is Rounded over its drop shadow on a padded transparent canvas.
	Shadowed image.Image
	// Crop is the region of the source that was used.
	Crop Rectangle
}

// =============================================================================
// Background Stage Types
// =============================================================================

// BackgroundInput contains parameters for the background layer.
type BackgroundInput struct {
	Width         int
	Height        int
	GradientStart color.Color
	GradientEnd   color.Color
	Direction     ports.GradientDirection
	CurveColor    color.Color
	Orientation   curves.Orientation
	Seed          string

	TopImage       image.Image // optional
	TopPlacement   profile.TopImagePlacement
	TopSpaceHeight int
}

// BackgroundResult contains the assembled background.
type BackgroundResult struct {
	Image  image.Image
	Curves []curves.Path
	// TopImageBounds is empty when no top image was drawn.
	TopImageBounds Rectangle
}

// =============================================================================
// Composite Stage Types
// =============================================================================

// CompositeInput contains the layers of a portrait mockup.
type CompositeInput struct {
	Background    image.Image
	Subject       image.Image // shadowed subject
	Layout        LayoutResult
	BottomLogo    image.Image // optional
	LogoPlacement profile.BottomLogoPlacement
	Final         Dimension
}

// CompositeResult contains the finished image at its final resolution.
type CompositeResult struct {
	Image         image.Image
	SubjectBounds Rectangle // in working canvas coordinates
	LogoBounds    Rectangle
}

// =============================================================================
// Banner Stage Types
// =============================================================================

// BannerInput contains parameters for the Feature Graphic composition.
type BannerInput struct {
	Background      image.Image
	Source          image.Image
	Logo            image.Image // optional
	TextLines       []string
	TextColor       color.Color
	FontPath        string // empty selects the embedded bold font
	Spec            profile.Banner
	Shadow          profile.Shadow
	ShadowMargin    int
	StatusBarOffset int
}

// BannerResult contains the generated Feature Graphic.
type BannerResult struct {
	Image       image.Image
	PhoneBounds Rectangle
	LogoBounds  Rectangle
	TextBounds  []Rectangle
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the image to publish.
type EncodeInput struct {
	Image      image.Image
	OutputPath string
}

// EncodeResult describes the written file.
type EncodeResult struct {
	Path     string
	Width    int
	Height   int
	FileSize int64
}
