// Package cmd wires the cobra command tree: the interactive menu on the root
// command plus one-shot subcommands for scripting.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
	"github.com/thenoetrevino/todo/internal/menu"
)

// runner holds the flag values and everything opened for one invocation
type runner struct {
	root *cobra.Command

	configPath string
	dbPath     string
	logFile    string
	logLevel   string
	noColor    bool
	jsonOutput bool
	quiet      bool

	app       *app.App
	logger    *slog.Logger
	logCloser io.Closer
	styles    menu.Styles
}

func newRunner() *runner {
	c := &runner{}

	c.root = &cobra.Command{
		Use:   "todo",
		Short: "todo - a single-user task tracker",
		Long: `todo keeps a list of tasks in a local SQLite file.

Run without arguments for the interactive menu, or use a subcommand
to add, list, complete, edit or delete a single task.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return c.open(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := menu.New(c.app.TaskService, cmd.InOrStdin(), cmd.OutOrStdout(),
				menu.WithStyles(c.styles),
				menu.WithLogger(c.logger),
			)
			return m.Run(cmd.Context())
		},
	}

	flags := c.root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	flags.StringVar(&c.dbPath, "db", "", "task store location, a file path or :memory: (a file store keeps a <path>.lock beside it)")
	flags.StringVar(&c.logFile, "log-file", "", "log file (default ~/.todo/todo.log)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	c.root.AddCommand(
		newAddCmd(c),
		newListCmd(c),
		newDoneCmd(c),
		newEditCmd(c),
		newRmCmd(c),
	)

	return c
}

// Execute runs the command tree against os.Args and returns the process
// exit code
func Execute() int {
	c := newRunner()
	err := c.root.ExecuteContext(context.Background())
	if err != nil {
		c.report(err)
	}

	if cerr := c.close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cerr)
		if err == nil {
			return cli.ExitError
		}
	}
	return cli.ExitCode(err)
}

// report prints a command error in the output mode the command asked for
func (c *runner) report(err error) {
	f := &cli.OutputFormatter{
		JSON:   c.jsonOutput,
		Out:    c.root.OutOrStdout(),
		ErrOut: c.root.ErrOrStderr(),
	}
	if ferr := f.Error(cli.ErrorCode(err), err.Error()); ferr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if c.logger != nil {
		c.logger.Debug("command failed", "error", err, "exit_code", cli.ExitCode(err))
	}
}

// open loads config, starts logging and opens the task store
func (c *runner) open(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dbPath != "" {
		cfg.DatabasePath = c.dbPath
	}
	if c.logFile != "" {
		cfg.LogFile = c.logFile
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	logger, closer, err := logging.New(logging.Options{
		File:      cfg.LogFile,
		Level:     cfg.LogLevel,
		MaxSizeMB: cfg.LogMaxSize,
	})
	if err != nil {
		return err
	}
	c.logger, c.logCloser = logger, closer
	slog.SetDefault(logger)

	c.app, err = app.Open(cmd.Context(), cfg.DatabasePath, app.WithLogger(logger))
	if err != nil {
		logger.Error("failed to open task store", "location", cfg.DatabasePath, "error", err)
		return err
	}

	c.styles = menu.PlainStyles()
	if !c.noColor && isTerminal(cmd.OutOrStdout()) {
		c.styles = menu.NewStyles(cfg.ColorScheme)
	}

	logger.Debug("todo started", "command", cmd.Name(), "store", c.app.Location())
	return nil
}

// close releases the store and the log file. Safe to call more than once.
func (c *runner) close() error {
	var errs []error
	if c.app != nil {
		errs = append(errs, c.app.Close())
		c.app = nil
	}
	if c.logCloser != nil {
		errs = append(errs, c.logCloser.Close())
		c.logCloser = nil
	}
	return errors.Join(errs...)
}

// needsStore reports whether cmd reads or writes tasks. Help and shell
// completion run without opening the store.
func needsStore(cmd *cobra.Command) bool {
	for p := cmd; p != nil; p = p.Parent() {
		switch p.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
