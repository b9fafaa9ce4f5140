package cli

import (
	"context"
)

// NormalizeCommand handles the normalize command
type NormalizeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewNormalizeCommand creates a new normalize command handler
func NewNormalizeCommand(app *App) *NormalizeCommand {
	return &NormalizeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute decodes a record and re-encodes it with every field present
func (c *NormalizeCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.decodeTask(recordPath(args))
	if err != nil {
		return c.errorHandler.Handle("read task", err)
	}
	return c.errorHandler.Handle("write task", c.app.writeRecord(task))
}
