package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ordersync/internal/application/commands"
)

var (
	primary = lipgloss.Color("#7C3AED") // Purple
	green   = lipgloss.Color("#10B981")
	muted   = lipgloss.Color("#6B7280") // Gray
	amber   = lipgloss.Color("#F59E0B")
	red     = lipgloss.Color("#EF4444")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted)

	amountStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	dryRunStyle = lipgloss.NewStyle().
			Foreground(amber).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)
)

// renderResult formats the run summary printed to stdout on success.
func renderResult(res *commands.SyncResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ordersync") + "  " + res.Record.RangeLabel + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("source A:"), amountStyle.Render(res.Record.AmountA.StringFixed(2))))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("source B:"), amountStyle.Render(res.Record.AmountB.StringFixed(2))))

	if res.DryRun {
		b.WriteString("  " + dryRunStyle.Render("dry run: nothing appended"))
	} else if res.RowRef != "" {
		b.WriteString("  " + labelStyle.Render("appended at "+res.RowRef))
	} else {
		b.WriteString("  " + labelStyle.Render("appended"))
	}
	b.WriteString("\n  " + labelStyle.Render(fmt.Sprintf("done in %s", res.Elapsed.Round(time.Millisecond))))

	return b.String()
}
