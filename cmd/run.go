package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"darkroom/internal/batch"
	"darkroom/internal/config"
	"darkroom/internal/tui"
	"darkroom/pkg/imgutil"
)

// One runner for the whole process; a second batch is refused while one is
// in flight.
var runner = batch.NewRunner()

// workingDir resolves the --dir flag, falling back to the persisted setting.
func workingDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if dir := config.LoadWorkDir(); dir != "" {
		return dir, nil
	}
	return "", errors.New("no working directory: pass --dir or set one with 'darkroom dir <path>'")
}

// runBatch enumerates the working directory and drives op over the matches,
// streaming progress into the TUI and printing a summary afterward.
func runBatch(op batch.Operation, pattern string) error {
	dir, err := workingDir()
	if err != nil {
		return err
	}

	files, err := imgutil.ListImages(dir, pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stdout, "No matching images in", dir)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan batch.FileUpdate, 64)
	model := tui.NewModel(op.Name(), files, updates, cancel)
	program := tea.NewProgram(model)

	uiDone := make(chan struct{})
	go func() {
		_, _ = program.Run()
		close(uiDone)
	}()

	outcome, err := runner.Run(ctx, op, files, updates)
	close(updates)
	<-uiDone
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, tui.RenderSummary(tui.OutcomeRows(outcome)))
	if outcome.Canceled {
		fmt.Fprintln(os.Stdout, "Batch cancelled.")
	}
	return nil
}
