package storeshots

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/user/storeshots/pkg/adapters/filesink"
	"github.com/user/storeshots/pkg/adapters/ggrenderer"
	"github.com/user/storeshots/pkg/adapters/logger"
	"github.com/user/storeshots/pkg/adapters/nullsink"
	"github.com/user/storeshots/pkg/adapters/osfilesystem"
	"github.com/user/storeshots/pkg/curves"
	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/stages/background"
	"github.com/user/storeshots/pkg/stages/banner"
	"github.com/user/storeshots/pkg/stages/composite"
	"github.com/user/storeshots/pkg/stages/encode"
	"github.com/user/storeshots/pkg/stages/layout"
	"github.com/user/storeshots/pkg/stages/subject"
)

// Options configures a Generator.
type Options struct {
	Debug    bool   // save intermediate layers to DebugDir
	DebugDir string // default: ./debug
	Workers  int    // batch workers; 0 uses the number of CPUs
	Logger   ports.Logger
}

// Generator renders mockups on the local filesystem.
type Generator struct {
	orch    *orchestrator.Orchestrator
	fs      ports.FileSystem
	workers int
}

// New wires the renderer, filesystem and stages into a Generator.
func New(opts Options) (*Generator, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if opts.Debug {
		dir := opts.DebugDir
		if dir == "" {
			dir = "./debug"
		}
		if err := fs.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(dir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		layout.NewStage(),
		subject.NewStage(renderer, log),
		background.NewStage(renderer, curves.NewGenerator(curves.DefaultConfig()), log),
		composite.NewStage(renderer, log),
		banner.NewStage(renderer, log),
		encode.NewStage(renderer, fs, log),
		renderer,
		fs,
		sink,
		log,
	)

	return &Generator{
		orch:    orch,
		fs:      fs,
		workers: opts.Workers,
	}, nil
}

// Generate renders a single asset.
func (g *Generator) Generate(ctx context.Context, req pipeline.AssetRequest) (orchestrator.AssetResult, error) {
	return g.orch.Run(ctx, req)
}

// GenerateBatch expands plan and renders every asset. The returned error is
// only about planning; per-asset failures are reported in the results.
func (g *Generator) GenerateBatch(ctx context.Context, plan orchestrator.Plan) ([]orchestrator.BatchResult, error) {
	requests, err := orchestrator.PlanBatch(g.fs, plan)
	if err != nil {
		return nil, err
	}
	return g.orch.RunBatch(ctx, requests, g.workers), nil
}

// GenerateScreenshot renders only the assets of plan that come from the
// screenshot at path. It is used to refresh outputs after a file changes.
func (g *Generator) GenerateScreenshot(ctx context.Context, plan orchestrator.Plan, path string) ([]orchestrator.BatchResult, error) {
	requests, err := orchestrator.PlanBatch(g.fs, plan)
	if err != nil {
		return nil, err
	}
	requests = orchestrator.FilterBySource(requests, filepath.Base(path))
	if len(requests) == 0 {
		return nil, nil
	}
	return g.orch.RunBatch(ctx, requests, g.workers), nil
}

// FileSystem returns the filesystem the generator reads and writes through.
func (g *Generator) FileSystem() ports.FileSystem {
	return g.fs
}
