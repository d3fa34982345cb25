package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/imposer/pkg/core/impose"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level     log.Level
		wantDebug bool
	}{
		{LogInfo, false},
		{LogDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)
			l.Debug("sheet emitted")
			if got := buf.Len() > 0; got != tt.wantDebug {
				t.Errorf("debug output = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, LogInfo).Info("planned")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("want HH:MM:SS.ms prefix, got %q", buf.String())
	}
}

func TestPlannerTraceAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, LogDebug)

	_, err := impose.Build(impose.Request{PageCount: 6, Scheme: impose.SchemeBooklet}, impose.WithTracer(l.Debug))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(buf.String(), "sheet emitted") {
		t.Errorf("trace events missing from debug log:\n%s", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))
	prog.done("Planned 4 sheets")

	out := buf.String()
	if !strings.Contains(out, "Planned 4 sheets (") || !strings.Contains(out, "s)") {
		t.Errorf("want message with elapsed time, got %q", out)
	}
}
