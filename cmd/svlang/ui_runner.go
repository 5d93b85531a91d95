package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mohamed/svlang/internal/driver"
	"github.com/mohamed/svlang/internal/ui"
)

// runCheckWithUI drives driver.Check on a background goroutine, feeding
// its progress events into a Bubble Tea program running on the calling
// goroutine.
func runCheckWithUI(ctx context.Context, title string, files []string, req driver.CheckRequest) (*driver.CheckResult, error) {
	events := make(chan driver.Event, 256)
	type outcome struct {
		result *driver.CheckResult
		err    error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Check(ctx, reqCopy)
		outcomeCh <- outcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("progress UI failed: %w", err)
	}
	out := <-outcomeCh
	return out.result, out.err
}
