package cli

import (
	"context"
	"strconv"
	"strings"

	"todo/internal/domain"
	"todo/internal/errors"
)

// NewTaskFlags carries the optional fields given to the new command.
// CategorySet and NotesSet distinguish an explicit empty value from an
// omitted flag.
type NewTaskFlags struct {
	Completed   bool
	Priority    string
	Due         string
	Category    string
	CategorySet bool
	Notes       string
	NotesSet    bool
}

// NewTaskCommand handles the new command
type NewTaskCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewNewTaskCommand creates a new task construction command handler
func NewNewTaskCommand(app *App) *NewTaskCommand {
	return &NewTaskCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute builds a task from an id, a title and the app's NewTaskFlags, then prints its record
func (c *NewTaskCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "new", `usage: todo new <id> "title"`)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("id", args[0], "must be an integer")
	}
	title := strings.Join(args[1:], " ")

	task, err := c.buildTask(id, title, c.app.newFlags)
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}
	return c.errorHandler.Handle("create task", c.app.writeRecord(task))
}

func (c *NewTaskCommand) buildTask(id int64, title string, flags NewTaskFlags) (domain.Task, error) {
	opts := []domain.TaskOption{domain.WithCompleted(flags.Completed)}
	if flags.Priority != "" {
		opts = append(opts, domain.WithPriority(flags.Priority))
	}
	if flags.Due != "" {
		due, err := domain.ParseDate(flags.Due)
		if err != nil {
			return domain.Task{}, errors.NewInvalidInputError("due", flags.Due, "must be a date in YYYY-MM-DD format")
		}
		opts = append(opts, domain.WithDueDate(due))
	}
	if flags.CategorySet {
		opts = append(opts, domain.WithCategory(flags.Category))
	}
	if flags.NotesSet {
		opts = append(opts, domain.WithNotes(flags.Notes))
	}
	return domain.NewTask(id, title, opts...), nil
}
