package summarizer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/user/storeshots/pkg/mocks"
	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/profile"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithSettings(t *testing.T) {
	settings := Settings{
		ScreenshotsDir: "screenshots",
		OutputDir:      "mockups",
		GradientStart:  "#667eea",
		GradientEnd:    "#764ba2",
		Profiles:       []string{"iphone", "ipad"},
		Workers:        4,
	}

	summary := NewBuilder().
		WithSettings(settings).
		WithDuration(3 * time.Second).
		Build()

	if summary.Settings.OutputDir != "mockups" || len(summary.Settings.Profiles) != 2 {
		t.Errorf("unexpected settings %+v", summary.Settings)
	}
	if summary.Duration != 3*time.Second {
		t.Errorf("expected duration 3s, got %v", summary.Duration)
	}
}

func TestBuilder_WithBatch(t *testing.T) {
	results := []orchestrator.BatchResult{
		{
			Index: 0,
			Request: pipeline.AssetRequest{
				SourcePath: "screenshots/01_home.png",
				Profile:    profile.IPhone,
				OutputPath: "mockups/iphone_6_7/01_home.png",
			},
			Result: orchestrator.AssetResult{Width: 1290, Height: 2796, FileSize: 2048, Duration: time.Second},
		},
		{
			Index: 1,
			Request: pipeline.AssetRequest{
				SourcePath: "screenshots/02_list.png",
				Profile:    profile.IPad,
				OutputPath: "mockups/ipad_12_9/02_list.png",
			},
			Err: errors.New("decode: image decode failed"),
		},
	}

	summary := NewBuilder().WithBatch(results).Build()

	if len(summary.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(summary.Assets))
	}
	ok := summary.Assets[0]
	if ok.Source != "01_home.png" || ok.Profile != "iphone" || ok.Width != 1290 || ok.Bytes != 2048 || ok.Failed() {
		t.Errorf("unexpected asset %+v", ok)
	}
	failed := summary.Assets[1]
	if !failed.Failed() || failed.Err != "decode: image decode failed" || failed.Bytes != 0 {
		t.Errorf("unexpected failed asset %+v", failed)
	}

	if summary.Succeeded() != 1 || summary.Failed() != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 1/1", summary.Succeeded(), summary.Failed())
	}
	if summary.TotalBytes() != 2048 {
		t.Errorf("total bytes = %d, want 2048", summary.TotalBytes())
	}
}

func TestBuilder_AddAsset(t *testing.T) {
	summary := NewBuilder().
		AddAsset(AssetInfo{Source: "a.png", Bytes: 10}).
		AddAsset(AssetInfo{Source: "b.png", Bytes: 20}).
		Build()

	if len(summary.Assets) != 2 || summary.TotalBytes() != 30 {
		t.Errorf("unexpected assets %+v", summary.Assets)
	}
}

type countFormatter struct{}

func (countFormatter) Format(s *Summary) string {
	return fmt.Sprintf("%d assets", len(s.Assets))
}

func TestWriter_CustomFormatter(t *testing.T) {
	fs := mocks.NewFileSystem()
	summary := NewSummary()
	summary.Assets = append(summary.Assets, AssetInfo{})

	if err := NewWriter(countFormatter{}, fs).Write("out/REPORT.txt", summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, ok := fs.GetFile("out/REPORT.txt")
	if !ok || string(data) != "1 assets" {
		t.Errorf("unexpected report %q", data)
	}
}
