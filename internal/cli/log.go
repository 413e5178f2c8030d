package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganzhi/pkg/observability"
)

// newLogger returns a logger for w that stamps each line with the wall
// clock to the hundredth of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// the package default when the context has none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// stopwatch logs how long a slow step took: rendering a diagram or
// scanning a run of years.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(ctx context.Context) stopwatch {
	return stopwatch{logger: loggerFromContext(ctx), start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time.
func (s stopwatch) done(msg string, keyvals ...any) {
	took := time.Since(s.start).Round(time.Millisecond)
	s.logger.Info(msg, append(keyvals, "took", took)...)
}

// logHooks writes transit and discovery events as debug lines.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.TransitHooks   = logHooks{}
	_ observability.DiscoveryHooks = logHooks{}
)

func (h logHooks) OnExtend(transit string, year, cached int) {
	h.logger.Debug("transit extended", "transit", transit, "year", year, "cached", cached)
}

func (h logHooks) OnUnsupported(transit string, year int) {
	h.logger.Debug("transit does not cover year", "transit", transit, "year", year)
}

func (h logHooks) OnDiscover(view string, year, combos int, d time.Duration) {
	kv := []any{"view", view}
	if year != 0 {
		kv = append(kv, "year", year)
	}
	h.logger.Debug("discovered", append(kv, "combos", combos, "took", d)...)
}

// registerHooks routes library events to l for the rest of the process.
func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetTransitHooks(h)
	observability.SetDiscoveryHooks(h)
}
