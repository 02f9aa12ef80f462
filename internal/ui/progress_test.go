package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"unimath/internal/pipeline"
)

func TestApplyEventTracksFiles(t *testing.T) {
	m := NewProgressModel("scan", []string{"a.md", "b.md"}, nil).(*progressModel)

	m.applyEvent(pipeline.Event{File: "a.md", Stage: pipeline.StageScan, Status: pipeline.StatusWorking})
	m.applyEvent(pipeline.Event{File: "b.md", Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: errors.New("boom")})
	m.applyEvent(pipeline.Event{File: "unknown.md", Stage: pipeline.StageScan, Status: pipeline.StatusDone})

	if m.items[0].status != "scanning" || m.items[1].status != "error" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if got := m.percent(); got != 0.75 {
		t.Errorf("percent = %v, want 0.75", got)
	}
	if m.failed != 1 {
		t.Errorf("failed = %d", m.failed)
	}

	m.done = true
	view := m.View()
	for _, want := range []string{"done: scan, 1 failed", "scanning", "a.md", "error"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short.md", 20); got != "short.md" {
		t.Errorf("short value changed to %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Errorf("zero width changed value to %q", got)
	}
	for _, in := range []string{"very/long/path/file.md", "数学记号/长文件名.md"} {
		got := truncate(in, 10)
		if runewidth.StringWidth(got) > 10 || !strings.HasSuffix(got, "...") {
			t.Errorf("truncate(%q, 10) = %q", in, got)
		}
	}
}

func TestStageLabels(t *testing.T) {
	for _, stage := range []pipeline.Stage{pipeline.StageLoad, pipeline.StageCache, pipeline.StageScan, pipeline.StageFix, pipeline.StageWrite} {
		if stageLabel(stage) == "" {
			t.Errorf("stage %s has no label", stage)
		}
		if progressFromStage(stage) <= 0 {
			t.Errorf("stage %s has no progress weight", stage)
		}
	}
}
