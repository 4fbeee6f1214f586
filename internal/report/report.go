// Package report renders a run summary for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"hrmcheck/internal/harness"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2196F3"))

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e53935"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			PaddingLeft(7)
)

// Summary renders one line per check plus pass/fail totals.
func Summary(environment string, results []harness.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Run against %s", environment)))
	b.WriteString("\n\n")

	passed, failed := 0, 0
	var total time.Duration
	for _, r := range results {
		total += r.Duration
		if r.Passed() {
			passed++
			b.WriteString(passStyle.Render("PASS"))
		} else {
			failed++
			b.WriteString(failStyle.Render("FAIL"))
		}
		b.WriteString(fmt.Sprintf("   %s %s\n", r.Name,
			mutedStyle.Render(fmt.Sprintf("(%s)", r.Duration.Round(time.Millisecond)))))
		if r.Err != nil {
			b.WriteString(errStyle.Render(r.Err.Error()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	counts := fmt.Sprintf("%d passed, %d failed", passed, failed)
	if failed > 0 {
		b.WriteString(failStyle.Render(counts))
	} else {
		b.WriteString(passStyle.Render(counts))
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf(" in %s", total.Round(time.Millisecond))))
	b.WriteString("\n")

	return b.String()
}

// Failed reports whether any result in the run failed.
func Failed(results []harness.Result) bool {
	for _, r := range results {
		if !r.Passed() {
			return true
		}
	}
	return false
}
