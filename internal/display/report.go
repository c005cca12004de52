package display

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/backmassage/prefixrun/internal/term"
	"github.com/backmassage/prefixrun/pkg/prefixrun"
)

// RenderReport renders the per-step run report as a bordered table: order,
// file, start, end, elapsed, status. The table is printed after every run,
// including failed ones, so the operator sees how far the pipeline got.
func RenderReport(rep *prefixrun.Report) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "File", "Start", "End", "Elapsed", "Status").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for i := range rep.Results {
		res := &rep.Results[i]
		t.Row(
			strconv.Itoa(res.Order),
			res.Name,
			FormatClock(res.Start),
			FormatClock(res.End),
			FormatDuration(res.Elapsed()),
			statusLabel(res.Status),
		)
	}
	return t.String()
}

// statusLabel colors terminal states when ANSI colors are active.
func statusLabel(s prefixrun.Status) string {
	if !term.Enabled() {
		return string(s)
	}
	switch s {
	case prefixrun.StatusOK, prefixrun.StatusDryRun:
		return term.Green + string(s) + term.NC
	case prefixrun.StatusFailed:
		return term.Red + string(s) + term.NC
	case prefixrun.StatusSkipped:
		return term.Yellow + string(s) + term.NC
	default:
		return string(s)
	}
}

// Summary returns the one-line outcome counts for the end of a run, e.g.
// "3 ok, 1 skipped, 1 failed". Statuses with a zero count are omitted.
func Summary(rep *prefixrun.Report) string {
	parts := make([]string, 0, 4)
	for _, s := range []prefixrun.Status{
		prefixrun.StatusOK,
		prefixrun.StatusDryRun,
		prefixrun.StatusSkipped,
		prefixrun.StatusFailed,
		prefixrun.StatusNotRun,
	} {
		if n := rep.Count(s); n > 0 {
			parts = append(parts, strconv.Itoa(n)+" "+string(s))
		}
	}
	if len(parts) == 0 {
		return "no steps"
	}
	return strings.Join(parts, ", ")
}
