package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"whisperctl/internal/activity"
	"whisperctl/internal/controller"
	"whisperctl/internal/notifications"
)

type consoleCommand struct {
	usage   string
	summary string
}

var consoleHelp = []consoleCommand{
	{"status", "Check server status now"},
	{"health", "Run a health check"},
	{"reset", "Open the reset confirmation"},
	{"confirm-reset", "Reset the server"},
	{"cancel-reset", "Dismiss the reset confirmation"},
	{"select <path>", "Choose the audio file (no path clears it)"},
	{"models", "Open the model picker"},
	{"pick <model>", "Mark a model in the picker"},
	{"confirm-model", "Use the marked model"},
	{"cancel-model", "Dismiss the model picker"},
	{"close", "Dismiss all dialogs"},
	{"transcribe", "Upload the selected file"},
	{"clear-log", "Clear the activity log"},
	{"monitor [on|off]", "Toggle background status polling"},
	{"show", "Print the dashboard"},
	{"log", "Print the activity log"},
	{"help", "Show this help"},
	{"quit", "Leave the console"},
}

// syncWriter serializes writes from the input loop, sinks and transcription
// goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type console struct {
	ctrl     *controller.Controller
	out      io.Writer
	colorize bool
	wg       sync.WaitGroup
}

func newConsole(ctrl *controller.Controller, out io.Writer, colorize bool) *console {
	c := &console{
		ctrl:     ctrl,
		out:      &syncWriter{w: out},
		colorize: colorize,
	}
	ctrl.Log().AddSink(activity.SinkFunc(func(entry activity.Entry) {
		fmt.Fprintln(c.out, renderEntry(entry, c.colorize))
	}))
	ctrl.Banner().OnChange(func(notice notifications.Notice) {
		if notice.Visible {
			fmt.Fprintln(c.out, renderNotice(notice, c.colorize))
		}
	})
	return c
}

// run reads commands from in until EOF, quit, or ctx cancellation, then
// waits for any transcription still in flight. An in that is also an
// io.Closer is closed on return so the reader goroutine exits.
func (c *console) run(ctx context.Context, in io.Reader) error {
	if closer, ok := in.(io.Closer); ok {
		defer closer.Close()
	}
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.printHelp()
	defer c.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if !c.handle(ctx, line) {
				return nil
			}
		}
	}
}

// handle executes one console line. It returns false when the user quits.
func (c *console) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "quit", "exit":
		return false
	case "help", "?":
		c.printHelp()
		return true
	case "show":
		c.printDashboard()
		return true
	case "log":
		for _, entry := range c.ctrl.Log().Entries() {
			fmt.Fprintln(c.out, renderEntry(entry, c.colorize))
		}
		return true
	case "select":
		args = nil
		if rest := strings.TrimSpace(line[len(fields[0]):]); rest != "" {
			args = []string{rest}
		}
	case "transcribe":
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			if err := c.ctrl.Dispatch(ctx, name, args...); err != nil {
				fmt.Fprintf(c.out, "error: %v\n", err)
			}
		}()
		return true
	}

	if err := c.ctrl.Dispatch(ctx, name, args...); err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return true
	}
	c.printDialogs(name)
	return true
}

func (c *console) printHelp() {
	rows := make([][]string, 0, len(consoleHelp))
	for _, cmd := range consoleHelp {
		rows = append(rows, []string{cmd.usage, cmd.summary})
	}
	fmt.Fprintln(c.out, renderTable([]string{"Command", "Description"}, rows, nil))
}

func (c *console) printDashboard() {
	view := c.ctrl.Snapshot()
	lines := renderPanel(view.Panel, c.colorize)
	file := "none"
	if view.SelectedFile != nil {
		file = view.SelectedFile.Name
	}
	control := view.Control.Label
	if !view.Control.Enabled {
		control += " (disabled)"
	}
	lines = append(lines,
		renderField("File", file),
		renderField("Upload model", view.UploadModel),
		renderField("Transcribe", control),
		renderField("Monitoring", yesNo(view.Monitoring)),
	)
	printLines(c.out, lines)
}

func (c *console) printDialogs(action string) {
	view := c.ctrl.Snapshot()
	if action == "status" {
		printLines(c.out, renderPanel(view.Panel, c.colorize))
	}
	if view.ResetDialogOpen && action == "reset" {
		fmt.Fprintln(c.out, "Reset server state? Type confirm-reset to proceed or cancel-reset to keep it.")
	}
	if view.ModelDialog.Open && (action == "models" || action == "pick") {
		fmt.Fprintln(c.out, renderModelTable(view.ModelDialog.Cards, view.ModelDialog.Selected))
		fmt.Fprintln(c.out, "Type pick <model>, then confirm-model.")
	}
}
