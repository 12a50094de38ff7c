package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nelo/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "nelo",
		Short: "A command-line task manager",
		Long: `Nelo is a command-line task manager with a mock login gate.

FEATURES:
  • Add, edit, toggle and delete tasks with priorities and due dates
  • Filter by completion state and search title and description
  • Clear all completed tasks in one step
  • Periodic reminders about tasks that are still open
  • Session and tasks survive across invocations
  • Fully configurable via config file, environment variables and flags

EXAMPLES:
  nelo login alex@example.com secret       # Sign in (any non-empty credentials)
  nelo add "Buy milk" --priority high      # Add a high-priority task
  nelo add "Pay rent" --due 2026-09-01     # Add a task with a due date
  nelo list                                # List tasks, sorted by priority and due date
  nelo list --filter active --search milk  # Narrow the listing
  nelo search                              # Interactive debounced search
  nelo toggle <id>                         # Flip a task between open and completed
  nelo edit <id> --title "New title"       # Change task fields
  nelo clear                               # Remove all completed tasks
  nelo watch                               # Print reminders about open tasks
  nelo logout                              # Sign out, keeping tasks

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Database Configuration:
    NELO_DB_DIR                            Database directory (default: ~/.nelo)
    NELO_DB_FILENAME                       Database filename (default: nelo.db)

  Storage Configuration:
    NELO_TASKS_KEY                         Storage key for the task collection (default: tasks)
    NELO_SESSION_KEY                       Storage key for the session flag (default: user)

  Search Configuration:
    NELO_SEARCH_DEBOUNCE                   Search debounce window (default: 300ms)

  Notification Configuration:
    NELO_NOTIFY_INTERVAL                   Reminder interval (default: 20m)

  Validation Configuration:
    NELO_VALIDATION_TITLE_MIN              Min title length (default: 1)
    NELO_VALIDATION_TITLE_MAX              Max title length (default: 255)

  Application Configuration:
    NELO_APP_TIMEOUT                       Application timeout (default: 60s)
    NELO_APP_VERBOSE                       Enable verbose output (default: false)

  The config file lives at ~/.nelo/config.toml (override with NELO_CONFIG)
  and is created with defaults on first launch.

GETTING HELP:
  nelo [command] --help                    # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides NELO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides NELO_DB_FILENAME)")

	// Storage configuration
	flags.String("tasks-key", "", "Storage key for the task collection (overrides NELO_TASKS_KEY)")
	flags.String("session-key", "", "Storage key for the session flag (overrides NELO_SESSION_KEY)")

	// Search configuration
	flags.Duration("debounce", 0, "Search debounce window (overrides NELO_SEARCH_DEBOUNCE)")

	// Notification configuration
	flags.Duration("notify-interval", 0, "Reminder interval (overrides NELO_NOTIFY_INTERVAL)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides NELO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides NELO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	loginCmd := &cobra.Command{
		Use:   "login [identifier] [secret]",
		Short: "Sign in",
		Long: `Sign in with an identifier and a secret.

The gate is a mock: any non-empty identifier and secret are accepted,
and only the identifier is remembered. Task commands refuse to run
until you are signed in.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewLoginCommand(r.app).Execute(args)
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Long:  "Sign out of the current session. Tasks are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewLogoutCommand(r.app).Execute(args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [task title]",
		Short: "Add a new task",
		Long: `Add a new task with the given title.

Examples:
  nelo add "Buy milk"
  nelo add "Pay rent" --priority high --due 2026-09-01
  nelo add "Call plumber" --desc "kitchen sink leaks"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := AddCommandOptions{}
			opts.Description, _ = cmd.Flags().GetString("desc")
			opts.Priority, _ = cmd.Flags().GetString("priority")
			opts.Due, _ = cmd.Flags().GetString("due")
			return NewAddCommand(r.app).Execute(args, opts)
		},
	}
	addCmd.Flags().String("desc", "", "Task description")
	addCmd.Flags().String("priority", "", "Task priority: high, medium or low (default medium)")
	addCmd.Flags().String("due", "", "Due date in YYYY-MM-DD form")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, sorted by priority and due date.

Examples:
  nelo list                            # All tasks
  nelo list --filter active            # Only open tasks
  nelo list --filter completed         # Only completed tasks
  nelo list --search milk              # Title or description contains "milk"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ListCommandOptions{}
			opts.Filter, _ = cmd.Flags().GetString("filter")
			opts.Search, _ = cmd.Flags().GetString("search")
			return NewListCommand(r.app).Execute(args, opts)
		},
	}
	listCmd.Flags().String("filter", "all", "Completion filter: all, active or completed")
	listCmd.Flags().String("search", "", "Case-insensitive search in title and description")

	editCmd := &cobra.Command{
		Use:   "edit [task id]",
		Short: "Edit a task",
		Long: `Edit the fields of an existing task. Only the fields you pass
flags for are changed.

Examples:
  nelo edit <id> --title "New title"
  nelo edit <id> --priority low --due 2026-10-01
  nelo edit <id> --clear-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := EditCommandOptions{}
			opts.Title, _ = cmd.Flags().GetString("title")
			opts.TitleSet = cmd.Flags().Changed("title")
			opts.Description, _ = cmd.Flags().GetString("desc")
			opts.DescriptionSet = cmd.Flags().Changed("desc")
			opts.Priority, _ = cmd.Flags().GetString("priority")
			opts.PrioritySet = cmd.Flags().Changed("priority")
			opts.Due, _ = cmd.Flags().GetString("due")
			opts.DueSet = cmd.Flags().Changed("due")
			opts.ClearDue, _ = cmd.Flags().GetBool("clear-due")
			return NewEditCommand(r.app).Execute(args, opts)
		},
	}
	editCmd.Flags().String("title", "", "New task title")
	editCmd.Flags().String("desc", "", "New task description")
	editCmd.Flags().String("priority", "", "New priority: high, medium or low")
	editCmd.Flags().String("due", "", "New due date in YYYY-MM-DD form")
	editCmd.Flags().Bool("clear-due", false, "Remove the due date")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search tasks interactively",
		Long: `Search tasks interactively. Each input line refines the query;
results are printed once typing has settled for the configured
debounce window. Quit with ctrl-d.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := SearchCommandOptions{}
			opts.Filter, _ = cmd.Flags().GetString("filter")
			return NewSearchCommand(r.app).Execute(os.Stdin, opts)
		},
	}
	searchCmd.Flags().String("filter", "all", "Completion filter: all, active or completed")

	toggleCmd := &cobra.Command{
		Use:   "toggle [task id]",
		Short: "Toggle a task between open and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewToggleCommand(r.app).Execute(args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [task id]",
		Short: "Delete a task",
		Long:  "Delete a task by id. Deleting an id that does not exist succeeds quietly.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(r.app).Execute(args)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewClearCommand(r.app).Execute(args)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print periodic reminders about open tasks",
		Long: `Keep the process alive and print a reminder whenever open tasks
are found on the configured interval. Stop with ctrl-c.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return NewWatchCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		loginCmd,
		logoutCmd,
		addCmd,
		listCmd,
		searchCmd,
		editCmd,
		toggleCmd,
		deleteCmd,
		clearCmd,
		watchCmd,
	)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}

	// Storage configuration
	if tasksKey, _ := flags.GetString("tasks-key"); tasksKey != "" {
		r.config.Storage.TasksKey = tasksKey
	}
	if sessionKey, _ := flags.GetString("session-key"); sessionKey != "" {
		r.config.Storage.SessionKey = sessionKey
	}

	// Search configuration
	if debounce, _ := flags.GetDuration("debounce"); debounce > 0 {
		r.config.Search.DebounceWindow = debounce
	}

	// Notification configuration
	if interval, _ := flags.GetDuration("notify-interval"); interval > 0 {
		r.config.Notification.Interval = interval
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
