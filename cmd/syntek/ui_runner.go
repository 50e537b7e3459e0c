package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"syntek/internal/driver"
	"syntek/internal/source"
	"syntek/internal/ui"
)

type dirOutcome struct {
	fs    *source.FileSet
	units []*driver.Unit
	err   error
}

// analyzeDirWithUI runs AnalyzeDir in the background and renders its
// progress events until the analysis finishes.
func analyzeDirWithUI(ctx context.Context, title string, files []string, opts driver.Options, paths []string) (*source.FileSet, []*driver.Unit, error) {
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		o := opts
		o.Progress = func(ev driver.ProgressEvent) { events <- ev }
		fs, units, err := driver.AnalyzeDir(ctx, o, paths...)
		outcomeCh <- dirOutcome{fs: fs, units: units, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// модель могла выйти раньше (ctrl+c): дочитываем события, чтобы анализ не встал
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.units, uiErr
	}
	return outcome.fs, outcome.units, outcome.err
}
