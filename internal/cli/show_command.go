package cli

import (
	"context"
	"fmt"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute decodes a record and prints its summary line
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.decodeTask(recordPath(args))
	if err != nil {
		return c.errorHandler.Handle("read task", err)
	}

	line := task.String()
	if task.IsOverdueOn(c.app.config.Clock()) {
		line += " (overdue)"
	}
	fmt.Fprintln(c.app.out, line)
	return nil
}
