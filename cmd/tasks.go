package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/menu"
	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

func newAddCmd(c *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description>...",
		Short: "Add a pending task",
		Long: `Add a task with status pending. All arguments are joined into the description.

Examples:
  todo add Buy milk

  # Capture the new id in a script
  id=$(todo add --quiet Pay bills)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.app.TaskService.AddTask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.formatter(cmd).Success(task,
				c.styles.Success.Render(fmt.Sprintf("Task added successfully. (ID %d)", task.ID)))
		},
	}

	c.addOutputFlags(cmd)
	return cmd
}

func newListCmd(c *runner) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in the order they were added",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter models.TaskFilter
			if status != "" {
				st, err := taskservice.ParseStatus(status)
				if err != nil {
					return err
				}
				filter.Status = &st
			}

			tasks, err := c.app.TaskService.ListTasks(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.quiet {
				for _, task := range tasks {
					fmt.Fprintln(out, task.ID)
				}
				return nil
			}

			sum, err := c.app.TaskService.Summarize(cmd.Context())
			if err != nil {
				return err
			}

			if c.jsonOutput {
				return c.formatter(cmd).Success(map[string]any{
					"tasks":   tasks,
					"summary": sum,
				}, "")
			}

			if len(tasks) == 0 {
				fmt.Fprintln(out, menu.MsgNoTasks)
				return nil
			}
			for _, task := range tasks {
				fmt.Fprintln(out, menu.FormatTask(task, c.styles))
			}
			fmt.Fprintln(out, c.styles.Subtle.Render(menu.FormatSummary(sum)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "only list tasks with this status (pending or completed)")
	c.addOutputFlags(cmd)
	return cmd
}

func newDoneCmd(c *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := taskservice.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			res, err := c.app.TaskService.MarkCompleted(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}

			return c.formatter(cmd).Success(res,
				c.styles.Success.Render(fmt.Sprintf("Task %d marked as completed.", id)))
		},
	}

	c.addOutputFlags(cmd)
	return cmd
}

func newEditCmd(c *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> <description>...",
		Short: "Replace the description of a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := taskservice.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			res, err := c.app.TaskService.UpdateDescription(cmd.Context(), id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}

			return c.formatter(cmd).Success(res,
				c.styles.Success.Render(fmt.Sprintf("Task %d updated successfully.", id)))
		},
	}

	c.addOutputFlags(cmd)
	return cmd
}

func newRmCmd(c *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := taskservice.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			res, err := c.app.TaskService.DeleteTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := res.Err(); err != nil {
				return err
			}

			return c.formatter(cmd).Success(res,
				c.styles.Success.Render(fmt.Sprintf("Task %d deleted successfully.", id)))
		},
	}

	c.addOutputFlags(cmd)
	return cmd
}

// addOutputFlags adds the script-friendly output flags to a subcommand
func (c *runner) addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&c.quiet, "quiet", false, "Minimal output (ID only)")
	cmd.MarkFlagsMutuallyExclusive("json", "quiet")
}

func (c *runner) formatter(cmd *cobra.Command) *cli.OutputFormatter {
	return &cli.OutputFormatter{
		JSON:   c.jsonOutput,
		Quiet:  c.quiet,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}
