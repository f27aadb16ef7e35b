// Package main provides the CLI entry point for storeshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/storeshots/pkg/adapters/logger"
	"github.com/user/storeshots/pkg/config"
	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/ports"
	"github.com/user/storeshots/pkg/profile"
	"github.com/user/storeshots/pkg/storeshots"
	"github.com/user/storeshots/pkg/summarizer"
	"github.com/user/storeshots/pkg/watcher"
)

var version = "dev"

// logFileMaxSizeMB is the rotation size of --log-file.
const logFileMaxSizeMB = 10

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "storeshots",
		Usage:       l10n.T("Create app store screenshots from app captures"),
		Description: l10n.T("storeshots places app screenshots on gradient backgrounds with decorative curves for the App Store and Google Play."),
		Version:     version,
		Commands: []*cli.Command{
			{
				Name:        "generate",
				Usage:       l10n.T("Generate mockups for every screenshot and profile"),
				Description: l10n.T("Find screenshots, render one mockup per store profile and write a report."),
				Flags:       append(append(batchFlags(), styleFlags()...), commonFlags()...),
				Action:      runGenerate,
			},
			{
				Name:        "feature",
				Usage:       l10n.T("Generate the Google Play Feature Graphic"),
				Description: l10n.T("Render the 1024x500 Feature Graphic from one screenshot."),
				Flags:       append(append(featureFlags(), styleFlags()...), commonFlags()...),
				Action:      runFeature,
			},
			{
				Name:        "watch",
				Usage:       l10n.T("Regenerate mockups when screenshots change"),
				Description: l10n.T("Run generate once, then regenerate the assets of every changed screenshot."),
				Flags:       append(append(batchFlags(), styleFlags()...), commonFlags()...),
				Action:      runWatch,
			},
			{
				Name:   "profiles",
				Usage:  l10n.T("List device profiles"),
				Action: runProfiles,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("storeshots version %s", version))
					return nil
				},
			},
		},
	}
}

func batchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Category: l10n.T("Input"), Usage: l10n.T("Configuration file (.yaml, .yml or .toml)")},
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Category: l10n.T("Input"), Usage: l10n.T("Screenshots directory")},
		&cli.StringFlag{Name: "pattern", Category: l10n.T("Input"), Usage: l10n.T("Screenshot file pattern (default: 0*.png)")},
		&cli.StringFlag{Name: "mockups", Category: l10n.T("Input"), Usage: l10n.T("Directory of device-framed screenshots for iPhone")},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Category: l10n.T("Output"), Usage: l10n.T("Output directory")},
		&cli.StringSliceFlag{Name: "profile", Aliases: []string{"p"}, Category: l10n.T("Output"), Usage: l10n.T("Device profile (repeatable, default: all store profiles)")},
		&cli.BoolFlag{Name: "no-feature", Category: l10n.T("Output"), Usage: l10n.T("Skip the Feature Graphic")},
		&cli.BoolFlag{Name: "no-report", Category: l10n.T("Output"), Usage: l10n.T("Do not write REPORT.md")},
		&cli.StringFlag{Name: "top-images", Category: l10n.T("Style"), Usage: l10n.T("Directory of top images matched by screenshot name")},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Category: l10n.T("Performance"), Usage: l10n.T("Number of parallel workers (0 = number of CPUs)")},
	}
}

func featureFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Category: l10n.T("Input"), Usage: l10n.T("Configuration file (.yaml, .yml or .toml)")},
		&cli.StringFlag{Name: "screenshot", Aliases: []string{"s"}, Required: true, Category: l10n.T("Input"), Usage: l10n.T("Screenshot to show on the phone (required)")},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Category: l10n.T("Output"), Usage: l10n.T("Output directory")},
		&cli.StringSliceFlag{Name: "text", Aliases: []string{"t"}, Category: l10n.T("Banner"), Usage: l10n.T("Text line (repeatable)")},
		&cli.StringFlag{Name: "text-color", Category: l10n.T("Banner"), Usage: l10n.T("Text color (hex, default: #ffffff)")},
		&cli.StringFlag{Name: "font", Category: l10n.T("Banner"), Usage: l10n.T("TrueType font for the text")},
		&cli.StringFlag{Name: "seed", Category: l10n.T("Banner"), Usage: l10n.T("Curve seed (default: current time)")},
	}
}

func styleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "preset", Category: l10n.T("Style"), Usage: l10n.T("Gradient preset (premium_purple, ocean_blue, sunset_orange, fresh_green, dark_purple, bold_red_pink)")},
		&cli.StringFlag{Name: "primary-color", Category: l10n.T("Style"), Usage: l10n.T("Brand color; the gradient ends at a darker shade")},
		&cli.StringFlag{Name: "gradient-start", Category: l10n.T("Style"), Usage: l10n.T("Gradient start color (hex)")},
		&cli.StringFlag{Name: "gradient-end", Category: l10n.T("Style"), Usage: l10n.T("Gradient end color (hex)")},
		&cli.StringFlag{Name: "logo", Category: l10n.T("Style"), Usage: l10n.T("Logo image")},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Category: l10n.T("Debug"), Usage: l10n.T("Enable debug output")},
		&cli.StringFlag{Name: "debug-dir", Category: l10n.T("Debug"), Usage: l10n.T("Directory for debug output")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Category: l10n.T("Logging"), Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Category: l10n.T("Logging"), Usage: l10n.T("Suppress all log output")},
		&cli.StringFlag{Name: "log-file", Category: l10n.T("Logging"), Usage: l10n.T("Also write logs to a rotating file")},
	}
}

// loadConfig builds the configuration from the optional config file and
// the flags that were set explicitly.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	setString := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	setString("input", &cfg.ScreenshotsDir)
	setString("pattern", &cfg.Pattern)
	setString("mockups", &cfg.MockupsDir)
	setString("output", &cfg.OutputDir)
	setString("top-images", &cfg.TopImagesDir)
	setString("logo", &cfg.LogoPath)
	setString("debug-dir", &cfg.DebugDir)
	setString("log-level", &cfg.LogLevel)
	setString("log-file", &cfg.LogFile)

	// Any explicit style flag replaces the whole gradient section.
	if c.IsSet("preset") || c.IsSet("primary-color") || c.IsSet("gradient-start") || c.IsSet("gradient-end") {
		cfg.Gradient = config.GradientConfig{}
		setString("preset", &cfg.Gradient.Preset)
		setString("primary-color", &cfg.Gradient.Primary)
		setString("gradient-start", &cfg.Gradient.Start)
		setString("gradient-end", &cfg.Gradient.End)
	}

	if c.IsSet("profile") {
		cfg.Profiles = nil
		for _, key := range c.StringSlice("profile") {
			kind, err := profile.ParseKind(key)
			if err != nil {
				return config.Config{}, err
			}
			cfg.Profiles = append(cfg.Profiles, kind)
		}
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.Bool("no-feature") {
		cfg.Feature.Enabled = false
	}
	if c.Bool("no-report") {
		cfg.Report = false
	}

	return cfg, cfg.Validate()
}

// newLogger creates the console logger, teed to a rotating file when
// configured. The returned function flushes the file.
func newLogger(cfg config.Config, quiet bool) (ports.Logger, func()) {
	level := cfg.LogLevelValue()

	var console ports.Logger
	if quiet {
		console = logger.NewNoop()
	} else {
		console = logger.NewConsole(level)
	}
	if cfg.LogFile == "" {
		return console, func() {}
	}

	file, closer := logger.NewFile(cfg.LogFile, level, logFileMaxSizeMB)
	return logger.NewTee(console, file), func() { closer.Close() }
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func newGenerator(cfg config.Config, log ports.Logger) (*storeshots.Generator, error) {
	return storeshots.New(storeshots.Options{
		Debug:    cfg.Debug,
		DebugDir: cfg.DebugDir,
		Workers:  cfg.Workers,
		Logger:   log,
	})
}

// runGenerate executes the generate command.
func runGenerate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, closeLog := newLogger(cfg, c.Bool("quiet"))
	defer closeLog()

	ctx, cancel := signalContext(log)
	defer cancel()

	gen, err := newGenerator(cfg, log)
	if err != nil {
		return err
	}

	failed, err := generateAll(ctx, gen, cfg, log)
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit(l10n.F("%d assets failed", failed), 1)
	}
	return nil
}

// generateAll runs the full batch and writes the report. It returns the
// number of failed assets.
func generateAll(ctx context.Context, gen *storeshots.Generator, cfg config.Config, log ports.Logger) (int, error) {
	plan, err := cfg.ToPlan()
	if err != nil {
		return 0, err
	}

	began := time.Now()
	results, err := gen.GenerateBatch(ctx, plan)
	if err != nil {
		return 0, err
	}

	summary := summarizer.NewBuilder().
		WithSettings(settingsOf(plan, cfg.Workers)).
		WithDuration(time.Since(began)).
		WithBatch(results).
		Build()

	if cfg.Report {
		writeReport(gen.FileSystem(), filepath.Join(plan.OutputDir, summarizer.ReportFile), summary, log)
	}

	return summary.Failed(), nil
}

func settingsOf(plan orchestrator.Plan, workers int) summarizer.Settings {
	kinds := plan.Profiles
	if len(kinds) == 0 {
		kinds = profile.StoreKinds()
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return summarizer.Settings{
		ScreenshotsDir: plan.ScreenshotsDir,
		OutputDir:      plan.OutputDir,
		GradientStart:  plan.GradientStart,
		GradientEnd:    plan.GradientEnd,
		Profiles:       names,
		Workers:        workers,
	}
}

func writeReport(fs ports.FileSystem, path string, summary *summarizer.Summary, log ports.Logger) {
	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	if err := summarizer.NewWriter(formatter, fs).Write(path, summary); err != nil {
		log.Error("Failed to write report: %s", err)
		return
	}
	log.Info("Report saved to %s", path)
}

// runFeature executes the feature command.
func runFeature(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, closeLog := newLogger(cfg, c.Bool("quiet"))
	defer closeLog()

	ctx, cancel := signalContext(log)
	defer cancel()

	gradient, err := cfg.ResolveGradient()
	if err != nil {
		return err
	}

	builder := storeshots.NewFeatureGraphicBuilder(c.String("screenshot")).
		WithGradient(gradient.Start, gradient.End).
		WithLogo(cfg.LogoPath).
		WithText(cfg.Feature.Text...).
		WithTextColor(cfg.Feature.TextColor).
		WithSeed(cfg.Feature.Seed).
		WithFont(cfg.Feature.FontPath).
		WithOutputDir(cfg.OutputDir)
	if c.IsSet("text") {
		builder.WithText(c.StringSlice("text")...)
	}
	if c.IsSet("text-color") {
		builder.WithTextColor(c.String("text-color"))
	}
	if c.IsSet("seed") {
		builder.WithSeed(c.String("seed"))
	}
	if c.IsSet("font") {
		builder.WithFont(c.String("font"))
	}

	req, err := builder.Build()
	if err != nil {
		return err
	}

	gen, err := newGenerator(cfg, log)
	if err != nil {
		return err
	}
	if _, err := gen.Generate(ctx, req); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// runWatch executes the watch command.
func runWatch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, closeLog := newLogger(cfg, c.Bool("quiet"))
	defer closeLog()

	ctx, cancel := signalContext(log)
	defer cancel()

	gen, err := newGenerator(cfg, log)
	if err != nil {
		return err
	}

	if _, err := generateAll(ctx, gen, cfg, log); err != nil {
		return err
	}

	plan, err := cfg.ToPlan()
	if err != nil {
		return err
	}
	plan = pinFeatureSource(gen.FileSystem(), plan)

	w, err := watcher.New(plan.ScreenshotsDir, patternOf(plan), log)
	if err != nil {
		return err
	}

	log.Info("Watching %s for changes", plan.ScreenshotsDir)
	err = w.Run(ctx, func(path string) {
		if _, err := gen.GenerateScreenshot(ctx, plan, path); err != nil {
			log.Error("Failed to generate %s: %s", filepath.Base(path), err)
		}
	})
	if err != nil {
		log.Error("Watch failed: %s", err)
		return err
	}
	return nil
}

func patternOf(plan orchestrator.Plan) string {
	if plan.Pattern == "" {
		return orchestrator.DefaultPattern
	}
	return plan.Pattern
}

// pinFeatureSource fixes the Feature Graphic screenshot to the current first
// screenshot, so a new file sorting earlier does not move it.
func pinFeatureSource(fs ports.FileSystem, plan orchestrator.Plan) orchestrator.Plan {
	if plan.Feature == nil || plan.Feature.Screenshot != "" {
		return plan
	}
	shots, err := fs.Glob(plan.ScreenshotsDir, patternOf(plan))
	if err != nil || len(shots) == 0 {
		return plan
	}
	feature := *plan.Feature
	feature.Screenshot = filepath.Base(shots[0])
	plan.Feature = &feature
	return plan
}

// runProfiles prints the device profile table.
func runProfiles(c *cli.Context) error {
	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l10n.T("KEY"), l10n.T("SIZE"), l10n.T("OUTPUT"), l10n.T("DEVICE FRAME"))
	for _, p := range profile.All() {
		frame := "-"
		if p.UsesDeviceFrame {
			frame = "yes"
		}
		fmt.Fprintf(tw, "%s\t%dx%d\t%s\t%s\n", p.Kind, p.Final.Width, p.Final.Height, p.OutputDir, frame)
	}
	return tw.Flush()
}
