package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/strfind/strfind/pkg/bench"
)

// RenderReport renders the ranked benchmark report as a bordered table:
// one row per algorithm (fastest first), one timing column per combination,
// and the overall average in the last column.
func RenderReport(report *bench.Report, styles Styles) string {
	headers := make([]string, 0, len(report.Combinations)+2)
	headers = append(headers, "Algorithm")
	headers = append(headers, report.Combinations...)
	headers = append(headers, "Average")

	rows := make([][]string, len(report.Rows))
	for i, row := range report.Rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells, row.Algorithm.DisplayName())
		for _, avg := range row.Averages {
			cells = append(cells, FormatDuration(avg))
		}
		cells = append(cells, FormatDuration(row.Overall))
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return styles.Header
			case 0:
				// Rows arrive ranked, so row 0 is the fastest algorithm.
				return styles.Fastest
			default:
				return styles.Cell
			}
		})

	return t.Render()
}

// RenderFastest renders the closing "fastest algorithm" line.
func RenderFastest(report *bench.Report, styles Styles) string {
	fastest := report.Fastest()
	return fmt.Sprintf("%s %s (%s average over %d trials)",
		styles.Label.Render("Fastest algorithm:"),
		styles.Fastest.UnsetPadding().Render(fastest.Algorithm.DisplayName()),
		FormatDuration(fastest.Overall),
		report.Trials)
}

// FormatDuration renders a duration rounded to tens of nanoseconds; single
// substring searches live at the nanosecond-to-microsecond scale.
func FormatDuration(d time.Duration) string {
	return d.Round(10 * time.Nanosecond).String()
}
