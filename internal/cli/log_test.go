package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ganzhi/pkg/observability"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		debug bool
	}{
		{"info", log.InfoLevel, false},
		{"debug", log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)
			l.Debug("transit extended")
			if got := buf.Len() > 0; got != tt.debug {
				t.Errorf("debug line written = %v, want %v", got, tt.debug)
			}
			l.Info("chart loaded")
			if !strings.Contains(buf.String(), "chart loaded") {
				t.Errorf("info line missing: %q", buf.String())
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should give the default logger")
	}

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("attached logger not returned")
	}
}

func TestStopwatch(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	sw := startStopwatch(ctx)
	time.Sleep(5 * time.Millisecond)
	sw.done("scanned", "years", 12)

	out := buf.String()
	for _, want := range []string{"scanned", "years=12", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("stopwatch output missing %q: %q", want, out)
		}
	}
	if strings.Contains(out, "took=0s") {
		t.Errorf("elapsed time not measured: %q", out)
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	registerHooks(newLogger(&buf, log.DebugLevel))
	t.Cleanup(observability.Reset)

	observability.Transit().OnExtend("dayun", 2031, 5)
	observability.Transit().OnUnsupported("xiaoyun", 1999)
	observability.Discovery().OnDiscover("at-birth", 0, 7, time.Millisecond)
	observability.Discovery().OnDiscover("mutual", 2031, 3, time.Millisecond)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	checks := []struct {
		line    int
		want    []string
		without string
	}{
		{0, []string{"transit=dayun", "year=2031", "cached=5"}, ""},
		{1, []string{"transit=xiaoyun", "year=1999"}, ""},
		{2, []string{"view=at-birth", "combos=7"}, "year="},
		{3, []string{"view=mutual", "year=2031", "combos=3"}, ""},
	}
	for _, c := range checks {
		for _, w := range c.want {
			if !strings.Contains(lines[c.line], w) {
				t.Errorf("line %d missing %q: %s", c.line, w, lines[c.line])
			}
		}
		if c.without != "" && strings.Contains(lines[c.line], c.without) {
			t.Errorf("line %d should not contain %q: %s", c.line, c.without, lines[c.line])
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	registerHooks(newLogger(&buf, log.InfoLevel))
	t.Cleanup(observability.Reset)

	observability.Transit().OnExtend("liunian", 1990, 7)
	if buf.Len() != 0 {
		t.Errorf("debug hooks should be silent at info level, got %q", buf.String())
	}
}
