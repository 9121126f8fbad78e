package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rsmin/internal/driver"
	"rsmin/internal/source"
	"rsmin/internal/ui"
)

type minifyOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// runMinifyWithUI runs driver.MinifyPaths behind the progress view. Quitting
// the view cancels the run.
func runMinifyWithUI(ctx context.Context, paths []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan minifyOutcome, 1)

	go func() {
		o := opts
		o.Progress = driver.ChannelSink(events)
		fileSet, results, err := driver.MinifyPaths(ctx, paths, o)
		outcomeCh <- minifyOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel("minify", events), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()

	// view is gone; keep the workers from blocking on sends
	go func() {
		for range events {
		}
	}()

	var outcome minifyOutcome
	select {
	case outcome = <-outcomeCh:
	default:
		cancel()
		outcome = <-outcomeCh
	}
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
