package output

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Flexoki colors
var (
	colorBorder    = lipgloss.Color("#282726")
	colorTextDim   = lipgloss.Color("#575653")
	colorTextMuted = lipgloss.Color("#6F6E69")
	colorText      = lipgloss.Color("#FFFCF0")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorGreen     = lipgloss.Color("#879A39")
	colorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorTextMuted)
	goodStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(colorOrange)
	dimStyle    = lipgloss.NewStyle().Foreground(colorTextDim)
)

// consoleTable holds the cells of one console table
type consoleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func renderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(60).
		Align(lipgloss.Center).
		Render(titleStyle.Render(title))
}

// renderTable renders a rounded table. Columns holding only amounts, years or
// months are right aligned so that decimal points line up.
func renderTable(t consoleTable) string {
	if len(t.Rows) == 0 {
		return ""
	}

	right := amountColumns(t.Rows)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell.Inherit(valueStyle)
			if row == table.HeaderRow {
				s = cell.Inherit(headerStyle)
			}
			if col < len(right) && right[col] {
				return s.Align(lipgloss.Right)
			}
			return s
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	return b.String()
}

// amountColumns reports for every column whether all its non-empty cells are
// amounts
func amountColumns(rows [][]string) []bool {
	var cols int
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	right := make([]bool, cols)
	for col := range right {
		right[col] = true
		for _, r := range rows {
			if col < len(r) && r[col] != "" && !isAmount(r[col]) {
				right[col] = false
				break
			}
		}
	}
	return right
}

// isAmount accepts plain numbers and FormatCurrency output such as "-€1,200.00"
func isAmount(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, currencySymbol)
	return s != "" && unicode.IsDigit(rune(s[0]))
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// renderSparkline draws the series scaled between its minimum and maximum,
// so a balance that starts high still shows its growth. A flat series is
// drawn at the bottom.
func renderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func renderKeyValue(label, value string) string {
	return fmt.Sprintf("  %s %s\n", mutedStyle.Render(label+":"), valueStyle.Render(value))
}
