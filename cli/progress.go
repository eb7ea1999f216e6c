package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gatetools/gate/hook"
)

// Status colors for the run report.
var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
	failedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})
	fixedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "214"})
	skippedStyle = mutedStyle
)

const reportWidth = 50

// RunReporter renders one line per hook as results come in, in the style
// of classic hook runners: the hook name, a dotted leader, and the
// colored status.
type RunReporter struct {
	w     io.Writer
	color bool
}

// NewRunReporter creates a reporter writing to w. When color is false the
// status is printed unstyled.
func NewRunReporter(w io.Writer, color bool) *RunReporter {
	return &RunReporter{w: w, color: color}
}

// Report renders the result of one hook.
func (r *RunReporter) Report(result hook.Result) {
	label := statusLabel(result.Status)
	if r.color {
		label = styleFor(result.Status).Render(label)
	}

	dots := reportWidth - len(result.Name) - len(statusLabel(result.Status))
	if dots < 3 {
		dots = 3
	}
	fmt.Fprintf(r.w, "%s%s%s\n", result.Name, strings.Repeat(".", dots), label)

	if result.Output != "" && result.Status != hook.StatusPassed && result.Status != hook.StatusSkipped {
		for _, line := range strings.Split(result.Output, "\n") {
			fmt.Fprintf(r.w, "  %s\n", line)
		}
	}
}

func statusLabel(s hook.Status) string {
	switch s {
	case hook.StatusPassed:
		return "Passed"
	case hook.StatusFailed:
		return "Failed"
	case hook.StatusFixed:
		return "Fixed"
	case hook.StatusSkipped:
		return "Skipped"
	case hook.StatusErrored:
		return "Errored"
	}
	return string(s)
}

func styleFor(s hook.Status) lipgloss.Style {
	switch s {
	case hook.StatusPassed:
		return passedStyle
	case hook.StatusFixed:
		return fixedStyle
	case hook.StatusSkipped:
		return skippedStyle
	}
	return failedStyle
}
