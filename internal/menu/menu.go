// Package menu implements the numbered, line-oriented task menu. It reads
// choices from any io.Reader so it can be driven by a terminal or a pipe.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
	"github.com/thenoetrevino/todo/internal/types"
)

// Menu choices
const (
	ChoiceAdd      = "1"
	ChoiceList     = "2"
	ChoiceComplete = "3"
	ChoiceUpdate   = "4"
	ChoiceDelete   = "5"
	ChoiceExit     = "6"
)

// Messages printed to the user
const (
	MsgNoTasks       = "No tasks found."
	MsgInvalidChoice = "Invalid choice. Please try again."
	MsgGoodbye       = "Goodbye!"
)

var entries = []struct {
	choice string
	label  string
}{
	{ChoiceAdd, "Add task"},
	{ChoiceList, "View tasks"},
	{ChoiceComplete, "Mark task as completed"},
	{ChoiceUpdate, "Update task"},
	{ChoiceDelete, "Delete task"},
	{ChoiceExit, "Exit"},
}

// Menu runs the interactive loop against a task service
type Menu struct {
	svc    taskservice.Service
	in     *bufio.Reader
	out    io.Writer
	styles Styles
	logger *slog.Logger
}

// Option configures a Menu
type Option func(*Menu)

// WithStyles overrides the default plain styles
func WithStyles(s Styles) Option {
	return func(m *Menu) {
		m.styles = s
	}
}

// WithLogger sets the logger used for unexpected failures
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// New creates a menu reading from in and writing to out
func New(svc taskservice.Service, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		styles: PlainStyles(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user picks Exit or input ends. Errors from
// individual actions are reported to the user and the loop continues; Run
// itself only fails when ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.prompt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			m.println(MsgGoodbye)
			return nil
		}

		err = m.dispatch(ctx, choice)
		switch {
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			m.println(MsgGoodbye)
			return nil
		case err != nil:
			m.reportError(err)
		}
	}
}

var errExit = errors.New("exit")

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case ChoiceAdd:
		return m.addTask(ctx)
	case ChoiceList:
		return m.listTasks(ctx)
	case ChoiceComplete:
		return m.markCompleted(ctx)
	case ChoiceUpdate:
		return m.updateTask(ctx)
	case ChoiceDelete:
		return m.deleteTask(ctx)
	case ChoiceExit:
		return errExit
	default:
		m.println(m.styles.Error.Render(MsgInvalidChoice))
		return nil
	}
}

func (m *Menu) addTask(ctx context.Context) error {
	description, err := m.prompt("Enter task description: ")
	if err != nil {
		return err
	}

	task, err := m.svc.AddTask(ctx, description)
	if err != nil {
		return err
	}

	m.println(m.styles.Success.Render(fmt.Sprintf("Task added successfully. (ID %d)", task.ID)))
	return nil
}

func (m *Menu) listTasks(ctx context.Context) error {
	tasks, err := m.svc.ListTasks(ctx, models.TaskFilter{})
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		m.println(MsgNoTasks)
		return nil
	}

	for _, task := range tasks {
		m.println(FormatTask(task, m.styles))
	}

	sum, err := m.svc.Summarize(ctx)
	if err != nil {
		return err
	}
	m.println(m.styles.Subtle.Render(FormatSummary(sum)))
	return nil
}

func (m *Menu) markCompleted(ctx context.Context) error {
	id, err := m.promptID("Enter task ID to mark as completed: ")
	if err != nil {
		return err
	}

	res, err := m.svc.MarkCompleted(ctx, id)
	if err != nil {
		return err
	}
	if !res.Matched {
		m.notFound(id)
		return nil
	}

	m.println(m.styles.Success.Render(fmt.Sprintf("Task %d marked as completed.", id)))
	return nil
}

func (m *Menu) updateTask(ctx context.Context) error {
	id, err := m.promptID("Enter task ID to update: ")
	if err != nil {
		return err
	}

	description, err := m.prompt("Enter new task description: ")
	if err != nil {
		return err
	}

	res, err := m.svc.UpdateDescription(ctx, id, description)
	if err != nil {
		return err
	}
	if !res.Matched {
		m.notFound(id)
		return nil
	}

	m.println(m.styles.Success.Render(fmt.Sprintf("Task %d updated successfully.", id)))
	return nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	id, err := m.promptID("Enter task ID to delete: ")
	if err != nil {
		return err
	}

	res, err := m.svc.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if !res.Matched {
		m.notFound(id)
		return nil
	}

	m.println(m.styles.Success.Render(fmt.Sprintf("Task %d deleted successfully.", id)))
	return nil
}

// reportError prints a user-facing message for err
func (m *Menu) reportError(err error) {
	var msg string
	switch {
	case errors.Is(err, taskservice.ErrInvalidInput):
		msg = "Invalid input: " + strings.TrimPrefix(err.Error(), taskservice.ErrInvalidInput.Error()+": ")
	case errors.Is(err, taskservice.ErrStorageUnavailable):
		m.logger.Error("storage failure", "error", err)
		msg = "Could not reach the task store: " + err.Error()
	default:
		m.logger.Error("unexpected menu error", "error", err)
		msg = "Error: " + err.Error()
	}
	m.println(m.styles.Error.Render(msg))
}

func (m *Menu) notFound(id types.TaskID) {
	m.println(m.styles.Error.Render(fmt.Sprintf("Task %d not found.", id)))
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(m.styles.Title.Render("To-Do List"))
	for _, e := range entries {
		m.println(fmt.Sprintf("%s. %s", e.choice, e.label))
	}
}

// prompt writes label and reads one trimmed line. It returns io.EOF only
// when input ended before any text was read.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, m.styles.Prompt.Render(label))

	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) promptID(label string) (types.TaskID, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return taskservice.ParseTaskID(raw)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

// FormatTask renders one task as a list line
func FormatTask(task *models.Task, s Styles) string {
	return fmt.Sprintf("%s %s %s",
		s.Subtle.Render(fmt.Sprintf("%d.", task.ID)),
		task.Description,
		s.status(task.Status).Render("["+task.Status.String()+"]"),
	)
}

// FormatSummary renders task counts, e.g. "2 tasks: 1 pending, 1 completed"
func FormatSummary(sum taskservice.Summary) string {
	noun := "tasks"
	if sum.Total == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s: %d pending, %d completed", sum.Total, noun, sum.Pending, sum.Completed)
}
