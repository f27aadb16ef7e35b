package orchestrator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/profile"
)

// DefaultPattern selects numbered screenshots such as 01_home.png.
const DefaultPattern = "0*.png"

// FeatureGraphicFile is the file name of the generated Feature Graphic.
const FeatureGraphicFile = "featureGraphic.png"

// Plan describes a batch: which screenshots, which profiles, where to write.
type Plan struct {
	ScreenshotsDir string
	Pattern        string // doublestar pattern relative to ScreenshotsDir

	// MockupsDir holds device-framed renders of the screenshots, used as the
	// iPhone source when a file with the same name exists.
	MockupsDir    string
	OutputDir     string
	Profiles      []profile.Kind
	GradientStart string
	GradientEnd   string
	TopImagesDir  string
	LogoPath      string
	Feature       *FeaturePlan // nil disables the Feature Graphic
}

// FeaturePlan configures the Feature Graphic of a batch.
type FeaturePlan struct {
	Screenshot string   // file name in ScreenshotsDir; empty picks the first screenshot
	TextLines  []string // nil uses the default lines
	TextColor  string
	Seed       string
	FontPath   string
}

// PlanBatch expands plan into one request per screenshot and profile, plus
// the Feature Graphic. Screenshots are processed in name order.
func PlanBatch(fs ports.FileSystem, plan Plan) ([]pipeline.AssetRequest, error) {
	pattern := plan.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	screenshots, err := fs.Glob(plan.ScreenshotsDir, pattern)
	if err != nil {
		return nil, fmt.Errorf("find screenshots in %s: %w", plan.ScreenshotsDir, err)
	}
	if len(screenshots) == 0 {
		return nil, fmt.Errorf("%w: no screenshots matching %q in %s", pipeline.ErrInvalidRequest, pattern, plan.ScreenshotsDir)
	}

	kinds := plan.Profiles
	if len(kinds) == 0 {
		kinds = profile.StoreKinds()
	}

	feature := plan.Feature
	var requests []pipeline.AssetRequest
	for _, shot := range screenshots {
		name := filepath.Base(shot)
		topImage := findSibling(fs, plan.TopImagesDir, name)

		for _, kind := range kinds {
			if kind == profile.FeatureGraphic {
				if feature == nil {
					feature = &FeaturePlan{}
				}
				continue
			}
			p, err := profile.Lookup(kind)
			if err != nil {
				return nil, err
			}

			source := shot
			if p.UsesDeviceFrame {
				if framed := findSibling(fs, plan.MockupsDir, name); framed != "" {
					source = framed
				}
			}

			requests = append(requests, pipeline.AssetRequest{
				SourcePath:     source,
				Profile:        kind,
				GradientStart:  plan.GradientStart,
				GradientEnd:    plan.GradientEnd,
				TopImagePath:   topImage,
				BottomLogoPath: plan.LogoPath,
				OutputPath:     filepath.Join(plan.OutputDir, p.OutputDir, stem(name)+".png"),
			})
		}
	}

	if feature != nil {
		req, err := planFeature(screenshots, plan, *feature)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func planFeature(screenshots []string, plan Plan, feature FeaturePlan) (pipeline.AssetRequest, error) {
	p, err := profile.Lookup(profile.FeatureGraphic)
	if err != nil {
		return pipeline.AssetRequest{}, err
	}

	source := screenshots[0]
	if feature.Screenshot != "" {
		source = ""
		for _, shot := range screenshots {
			if filepath.Base(shot) == feature.Screenshot {
				source = shot
				break
			}
		}
		if source == "" {
			return pipeline.AssetRequest{}, fmt.Errorf("%w: feature graphic screenshot %q not found", pipeline.ErrInvalidRequest, feature.Screenshot)
		}
	}

	return pipeline.AssetRequest{
		SourcePath:     source,
		Profile:        profile.FeatureGraphic,
		GradientStart:  plan.GradientStart,
		GradientEnd:    plan.GradientEnd,
		BottomLogoPath: plan.LogoPath,
		Seed:           feature.Seed,
		TextLines:      feature.TextLines,
		TextColor:      feature.TextColor,
		FontPath:       feature.FontPath,
		OutputPath:     filepath.Join(plan.OutputDir, p.OutputDir, FeatureGraphicFile),
	}, nil
}

// findSibling returns dir/name when it exists, otherwise "".
func findSibling(fs ports.FileSystem, dir, name string) string {
	if dir == "" {
		return ""
	}
	candidate := filepath.Join(dir, name)
	if ok, err := fs.Exists(candidate); err == nil && ok {
		return candidate
	}
	return ""
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// FilterBySource keeps the requests rendered from the screenshot with the
// given file name, including framed mockups and the Feature Graphic when it
// uses that screenshot.
func FilterBySource(requests []pipeline.AssetRequest, name string) []pipeline.AssetRequest {
	var kept []pipeline.AssetRequest
	for _, req := range requests {
		if filepath.Base(req.SourcePath) == name {
			kept = append(kept, req)
		}
	}
	return kept
}
