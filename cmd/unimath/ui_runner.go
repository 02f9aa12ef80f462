package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"unimath/internal/pipeline"
	"unimath/internal/ui"
)

type pipelineOutcome struct {
	result *pipeline.Result
	err    error
}

// runPipelineWithUI runs req in the background while a progress view consumes
// its events. The view exits once the event channel is closed.
func runPipelineWithUI(ctx context.Context, title string, req *pipeline.Request) (*pipeline.Result, error) {
	if req == nil {
		return nil, fmt.Errorf("missing pipeline request")
	}
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan pipelineOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = pipeline.ChannelSink{Ch: events}
		res, err := pipeline.Run(ctx, &reqCopy)
		outcomeCh <- pipelineOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// The view may quit before the run ends; keep the sink from blocking.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

func runPipeline(ctx context.Context, title string, mode uiMode, req *pipeline.Request) (*pipeline.Result, error) {
	if shouldUseTUI(mode, len(req.Files)) {
		return runPipelineWithUI(ctx, title, req)
	}
	return pipeline.Run(ctx, req)
}
