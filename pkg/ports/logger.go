package ports

import "context"

// LogLevel is the minimum severity a logger emits.
type LogLevel int

const (
	// LevelDebug shows per-stage raster details (crop boxes, fitted sizes).
	LevelDebug LogLevel = iota
	// LevelInfo shows one line per generated asset and the batch totals.
	LevelInfo
	// LevelWarn shows skipped overlays and other degraded output.
	LevelWarn
	// LevelError shows failed assets only.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a --log-level value. Unknown values mean info.
func ParseLogLevel(s string) LogLevel {
	for l := LevelDebug; l <= LevelQuiet; l++ {
		if l.String() == s {
			return l
		}
	}
	return LevelInfo
}

// Logger writes translated, printf-style messages. msg is an l10n key.
//
// Assets are rendered concurrently, so every line a worker writes for an
// asset should go through a logger scoped with WithAsset.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a logger tagged with a pipeline stage or
	// subsystem name, e.g. "subject" or "watcher".
	WithComponent(component string) Logger

	// WithAsset returns a logger tagged with the asset being generated,
	// e.g. "01_home_ipad". The component tag is kept.
	WithAsset(asset string) Logger
}

type assetKey struct{}

// ContextWithAsset records the asset a pipeline run is working on.
func ContextWithAsset(ctx context.Context, asset string) context.Context {
	return context.WithValue(ctx, assetKey{}, asset)
}

// AssetFromContext returns the asset recorded by ContextWithAsset, or "".
func AssetFromContext(ctx context.Context) string {
	asset, _ := ctx.Value(assetKey{}).(string)
	return asset
}

// LoggerFor scopes l to the asset recorded in ctx, if any.
func LoggerFor(ctx context.Context, l Logger) Logger {
	if asset := AssetFromContext(ctx); asset != "" {
		return l.WithAsset(asset)
	}
	return l
}
