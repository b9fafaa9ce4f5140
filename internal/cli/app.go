package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/logging"
)

// stdinPath selects the App's input stream instead of a file.
const stdinPath = "-"

// App represents the main CLI application
type App struct {
	config   *config.Config
	in       io.Reader
	out      io.Writer
	newFlags NewTaskFlags
	registry *CommandRegistry
}

// NewApp creates a new CLI application reading records from in and writing to out
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) *App {
	app := &App{
		config: cfg,
		in:     in,
		out:    out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the named command
func (a *App) Run(ctx context.Context, commandName string, args []string) error {
	logging.Debugf("running %s with args %v\n", commandName, args)
	return a.registry.Execute(ctx, commandName, args)
}

// readRecord loads a JSON record from path, or from the input stream when
// path is empty or "-".
func (a *App) readRecord(path string) (domain.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == stdinPath {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.NewIOError("read record", err)
	}
	logging.Debugf("read %d bytes from %q\n", len(data), path)
	return domain.DecodeJSONRecord(data)
}

// decodeTask reads and decodes a task honoring the configured strictness.
func (a *App) decodeTask(path string) (domain.Task, error) {
	record, err := a.readRecord(path)
	if err != nil {
		return domain.Task{}, err
	}
	task, err := domain.DecodeRecord(record, a.config.DecodeOptions()...)
	if err != nil {
		return domain.Task{}, err
	}
	logging.Debugf("decoded task %d (strict=%t)\n", task.ID, a.config.Decode.Strict)
	return task, nil
}

// writeRecord prints the task's record as JSON.
func (a *App) writeRecord(task domain.Task) error {
	var (
		data []byte
		err  error
	)
	if a.config.Output.Indent == "" {
		data, err = json.Marshal(task.ToRecord())
	} else {
		data, err = json.MarshalIndent(task.ToRecord(), "", a.config.Output.Indent)
	}
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeIO, "encode record")
	}
	if _, err := fmt.Fprintln(a.out, string(data)); err != nil {
		return errors.NewIOError("write record", err)
	}
	return nil
}

// recordPath picks the single optional path argument.
func recordPath(args []string) string {
	if len(args) == 0 {
		return stdinPath
	}
	return args[0]
}
