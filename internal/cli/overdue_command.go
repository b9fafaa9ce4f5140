package cli

import (
	"context"
	"fmt"
)

// OverdueCommand handles the overdue command
type OverdueCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewOverdueCommand creates a new overdue command handler
func NewOverdueCommand(app *App) *OverdueCommand {
	return &OverdueCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute decodes a record and prints true or false
func (c *OverdueCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.decodeTask(recordPath(args))
	if err != nil {
		return c.errorHandler.Handle("read task", err)
	}
	fmt.Fprintln(c.app.out, task.IsOverdueOn(c.app.config.Clock()))
	return nil
}
