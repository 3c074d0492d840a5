package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	pathColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

// out is where human-readable output goes; tests redirect it with rootCmd.SetOut.
func out() io.Writer {
	return rootCmd.OutOrStdout()
}

// PrintSection prints a section header
func PrintSection(title string) {
	_, _ = headerColor.Fprintf(out(), "\n▸ %s\n\n", title)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Fprintf(out(), "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	_, _ = warningColor.Fprintf(out(), "⚠ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	_, _ = fmt.Fprintln(out(), msg)
}

// PrintLabelValue prints "  label: value".
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Fprintf(out(), "  %s: ", label)
	_, _ = fmt.Fprintln(out(), value)
}

// PrintList prints items as a bulleted list.
func PrintList(items []string, indent int) {
	prefix := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = pathColor.Fprintf(out(), "%s• %s\n", prefix, item)
	}
}

// PrintTable prints rows under an underlined header. Columns are sized by rune
// count so non-ASCII paths line up; the last column is not padded.
func PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	w := out()
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	_, _ = headerColor.Fprintln(w, "  "+joinPadded(headers, widths))
	_, _ = dimColor.Fprintln(w, "  "+strings.Join(rule, "  "))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, "  "+joinPadded(row, widths))
	}
}

func joinPadded(cells []string, widths []int) string {
	var b strings.Builder
	for i := 0; i < len(cells) && i < len(widths); i++ {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cells[i])
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cells[i])))
		}
	}
	return b.String()
}

// PrintEmptyState prints a dimmed placeholder when there is nothing to show.
func PrintEmptyState(msg string) {
	_, _ = dimColor.Fprintf(out(), "  %s\n", msg)
}

// PrintCount returns "1 file" or "N files".
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
