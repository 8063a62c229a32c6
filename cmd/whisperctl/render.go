package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"whisperctl/internal/activity"
	"whisperctl/internal/dashboard"
	"whisperctl/internal/notifications"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	statusLabelWidth = 16
	statusIndent     = "  "
	progressWidth    = 30
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	return paint(base, kind, colorize)
}

func renderField(label, value string) string {
	return fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", value)
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColors(kind statusKind) text.Colors {
	switch kind {
	case statusOK:
		return text.Colors{text.FgGreen}
	case statusWarn:
		return text.Colors{text.FgYellow}
	case statusError:
		return text.Colors{text.FgRed}
	default:
		return text.Colors{text.FgBlue}
	}
}

func paint(value string, kind statusKind, colorize bool) string {
	if !colorize {
		return value
	}
	return statusKindColors(kind).Sprint(value)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = text.FgBlue.Sprint(line)
		rule = text.FgBlue.Sprint(rule)
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func severityKind(severity activity.Severity) statusKind {
	switch severity {
	case activity.SeveritySuccess:
		return statusOK
	case activity.SeverityWarning:
		return statusWarn
	case activity.SeverityError:
		return statusError
	default:
		return statusInfo
	}
}

func stateKind(state dashboard.State) statusKind {
	switch state {
	case dashboard.StateReady:
		return statusOK
	case dashboard.StateProcessing:
		return statusWarn
	default:
		return statusError
	}
}

func renderEntry(entry activity.Entry, colorize bool) string {
	return paint(entry.String(), severityKind(entry.Severity), colorize)
}

func renderNotice(notice notifications.Notice, colorize bool) string {
	lines := strings.Split(notice.Message, "\n")
	for i := range lines {
		prefix := "   "
		if i == 0 {
			prefix = ">> "
		}
		lines[i] = prefix + lines[i]
	}
	return paint(strings.Join(lines, "\n"), severityKind(notice.Severity), colorize)
}

func renderPanel(panel dashboard.Panel, colorize bool) []string {
	lines := renderSectionHeader("Server", colorize)
	lines = append(lines,
		renderStatusLine("Status", stateKind(panel.State), panel.StatusText, colorize),
		renderField("Memory", panel.Memory),
		renderField("Processing time", panel.ProcessingTime),
		renderField("Model", panel.Model),
		renderField("Model loaded", yesNo(panel.ModelLoaded)),
	)
	if panel.TaskID != "" {
		lines = append(lines, renderField("Task", panel.TaskID))
	}
	if panel.IdleDuration != dashboard.PlaceholderTime {
		lines = append(lines, renderField("Idle", panel.IdleDuration))
	}
	lines = append(lines, renderField("Progress", progressBar(panel.Progress, progressWidth)+" "+panel.Caption))
	return lines
}

func progressBar(percent, width int) string {
	percent = dashboard.ClampPercent(percent)
	filled := percent * width / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat("-", width-filled), percent)
}

func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
