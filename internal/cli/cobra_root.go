package cli

import (
	"context"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "Inspect and build to-do task records",
		Long: `todo reads and writes task records: flat JSON objects with the keys
id, title, completed, priority, category, notes and due_date.

EXAMPLES:
  todo new 1 "Buy milk" --due 2026-10-20     # Print a new task record
  todo show task.json                        # One-line summary with overdue status
  cat task.json | todo normalize             # Rewrite a record with every key present
  todo overdue task.json                     # Print true or false

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TODO_DECODE_STRICT                     Reject unknown record keys (default: true)
    TODO_OUTPUT_INDENT                     JSON indent, empty for compact (default: two spaces)
    TODO_TODAY                             Treat this YYYY-MM-DD date as today
    TODO_APP_VERBOSE                       Enable verbose output (default: false)
    TODO_DEBUG                             Print debug traces to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlagOverrides(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with the given arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Bool("strict", true, "Reject unknown record keys (overrides TODO_DECODE_STRICT)")
	flags.String("indent", "", "JSON output indent (overrides TODO_OUTPUT_INDENT)")
	flags.String("today", "", "Date to treat as today, YYYY-MM-DD (overrides TODO_TODAY)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	newCmd := &cobra.Command{
		Use:   "new <id> <title>",
		Short: "Print the record for a new task",
		Long: `Build a task from an id and a title and print its record.
Fields without a flag take their defaults: not completed, medium priority,
no due date, no category and no notes.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r.app.newFlags.CategorySet = cmd.Flags().Changed("category")
			r.app.newFlags.NotesSet = cmd.Flags().Changed("notes")
			return r.app.Run(cmd.Context(), "new", args)
		},
	}
	newFlags := newCmd.Flags()
	newFlags.BoolVar(&r.app.newFlags.Completed, "completed", false, "Mark the task completed")
	newFlags.StringVar(&r.app.newFlags.Priority, "priority", "", "Priority, conventionally low, medium, high or urgent")
	newFlags.StringVar(&r.app.newFlags.Due, "due", "", "Due date in YYYY-MM-DD format")
	newFlags.StringVar(&r.app.newFlags.Category, "category", "", "Category label")
	newFlags.StringVar(&r.app.newFlags.Notes, "notes", "", "Free-text notes")

	showCmd := &cobra.Command{
		Use:   "show [file|-]",
		Short: "Print a one-line summary of a task record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Run(cmd.Context(), "show", args)
		},
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize [file|-]",
		Short: "Decode a task record and print it with every key present",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Run(cmd.Context(), "normalize", args)
		},
	}

	overdueCmd := &cobra.Command{
		Use:   "overdue [file|-]",
		Short: "Print whether a task record is overdue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Run(cmd.Context(), "overdue", args)
		},
	}

	r.cmd.AddCommand(newCmd, showCmd, normalizeCmd, overdueCmd)
}

// applyFlagOverrides copies explicitly set global flags into the configuration
func (r *RootCommand) applyFlagOverrides(cmd *cobra.Command) error {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("strict") {
		strict, err := flags.GetBool("strict")
		if err != nil {
			return err
		}
		overrides.Strict = &strict
	}
	if flags.Changed("indent") {
		indent, err := flags.GetString("indent")
		if err != nil {
			return err
		}
		overrides.Indent = &indent
	}
	if flags.Changed("today") {
		today, err := flags.GetString("today")
		if err != nil {
			return err
		}
		overrides.Today = &today
	}
	if flags.Changed("verbose") {
		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}
		overrides.Verbose = &verbose
	}

	config.ApplyOverrides(r.app.config, overrides)
	if err := r.app.config.Validate(); err != nil {
		return err
	}

	logging.SetDebug(r.app.config.Application.Verbose)
	return nil
}
