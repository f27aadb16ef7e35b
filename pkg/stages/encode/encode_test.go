package encode

import (
	"bytes"
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/user/storeshots/pkg/adapters/logger"
	"github.com/user/storeshots/pkg/mocks"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
)

func pngRenderer() *mocks.Renderer {
	return &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			if format != ports.FormatPNG {
				return nil, errors.New("unexpected format")
			}
			return []byte("\x89PNG fake"), nil
		},
	}
}

func TestStage_Execute(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(pngRenderer(), fs, logger.NewNoop())

	input := pipeline.EncodeInput{
		Image:      image.NewRGBA(image.Rect(0, 0, 1290, 2796)),
		OutputPath: "out/iphone_6_7/01_home.png",
	}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := fs.GetFile("out/iphone_6_7/01_home.png")
	if !ok {
		t.Fatal("expected output file to be written")
	}
	if !bytes.Equal(data, []byte("\x89PNG fake")) {
		t.Errorf("unexpected file contents %q", data)
	}

	if result.Path != input.OutputPath || result.Width != 1290 || result.Height != 2796 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.FileSize != int64(len(data)) {
		t.Errorf("file size = %d, want %d", result.FileSize, len(data))
	}

	// only the published file remains
	if files := fs.GetAllFiles(); len(files) != 1 {
		t.Errorf("expected 1 file, got %v", files)
	}
	for _, d := range fs.Dirs() {
		if strings.Contains(d, ".storeshots-") {
			t.Errorf("temp directory %s left behind", d)
		}
	}
}

func TestStage_Execute_WriteFailureLeavesNothing(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.RenameFunc = func(oldPath, newPath string) error {
		return errors.New("disk full")
	}
	stage := NewStage(pngRenderer(), fs, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Image:      image.NewRGBA(image.Rect(0, 0, 10, 10)),
		OutputPath: "out/a.png",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if _, ok := fs.GetFile("out/a.png"); ok {
		t.Error("output must not exist after a failed publish")
	}
	if files := fs.GetAllFiles(); len(files) != 0 {
		t.Errorf("temp files left behind: %v", files)
	}
}

func TestStage_Execute_EncodeFailure(t *testing.T) {
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	stage := NewStage(renderer, mocks.NewFileSystem(), logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Image:      image.NewRGBA(image.Rect(0, 0, 10, 10)),
		OutputPath: "out/a.png",
	})
	if !errors.Is(err, pipeline.ErrRasterEngine) {
		t.Errorf("expected ErrRasterEngine, got %v", err)
	}
}

func TestStage_Execute_InvalidInput(t *testing.T) {
	stage := NewStage(pngRenderer(), mocks.NewFileSystem(), logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.EncodeInput{OutputPath: "a.png"}); !errors.Is(err, pipeline.ErrRasterEngine) {
		t.Errorf("nil image: expected ErrRasterEngine, got %v", err)
	}

	_, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: image.NewRGBA(image.Rect(0, 0, 1, 1))})
	if !errors.Is(err, pipeline.ErrInvalidRequest) {
		t.Errorf("empty path: expected ErrInvalidRequest, got %v", err)
	}
}

func TestStage_Execute_ContextCancelled(t *testing.T) {
	fs := mocks.NewFileSystem()
	stage := NewStage(pngRenderer(), fs, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.EncodeInput{
		Image:      image.NewRGBA(image.Rect(0, 0, 10, 10)),
		OutputPath: "out/a.png",
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("nothing should be written after cancellation")
	}
}
