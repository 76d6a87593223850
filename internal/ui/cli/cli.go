// Package cli implements the command-line report of the droplet results.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/droplet/internal/batch"
	"github.com/janpfeifer/droplet/internal/scan"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

// padRight s with spaces up to the display width.
func padRight(s string, width int) string {
	if w := displayWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// IsTerminal returns whether f is connected to a terminal, in which case the report can be styled.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

var (
	valueStyle = lipgloss.NewStyle().Bold(true)
	inputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Reporter writes the results of a batch.
type Reporter struct {
	// Styled enables colors and bold, for terminals.
	Styled bool

	// Naive also reports the total surface area, including the walls of enclosed air pockets.
	Naive bool

	// Stats reports all the droplet statistics.
	Stats bool
}

func (r *Reporter) style(s lipgloss.Style, text string) string {
	if !r.Styled {
		return text
	}
	return s.Render(text)
}

func inputName(input string) string {
	if input == scan.StdinName {
		return "stdin"
	}
	return input
}

// Report writes the results to w.
//
// A single result, without Naive or Stats, is reported as the bare exterior surface area, so the output can be
// piped. Otherwise each result gets a line prefixed with the input name, or a block of statistics.
func (r *Reporter) Report(w io.Writer, results []batch.Result) error {
	var sb strings.Builder
	switch {
	case r.Stats:
		for _, result := range results {
			r.writeStats(&sb, result)
		}
	case len(results) == 1 && !r.Naive:
		sb.WriteString(r.style(valueStyle, fmt.Sprint(results[0].Stats.ExteriorArea)))
		sb.WriteByte('\n')
	default:
		nameWidth := 0
		for _, result := range results {
			nameWidth = max(nameWidth, displayWidth(inputName(result.Input)))
		}
		for _, result := range results {
			name := r.style(inputStyle, inputName(result.Input)+":")
			sb.WriteString(padRight(name, nameWidth+1))
			sb.WriteString(" ")
			sb.WriteString(r.style(valueStyle, fmt.Sprint(result.Stats.ExteriorArea)))
			if r.Naive {
				fmt.Fprintf(&sb, " %s", r.style(labelStyle, fmt.Sprintf("(naive %d)", result.Stats.TotalArea)))
			}
			sb.WriteByte('\n')
		}
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}

func (r *Reporter) writeStats(sb *strings.Builder, result batch.Result) {
	stats := result.Stats
	rows := [][2]string{
		{"cubes", fmt.Sprint(stats.Cubes)},
		{"bounds", stats.Bounds.String()},
		{"exterior area", fmt.Sprint(stats.ExteriorArea)},
		{"total area", fmt.Sprint(stats.TotalArea)},
		{"trapped area", fmt.Sprint(stats.TrappedArea)},
		{"exterior cells", fmt.Sprint(stats.ExteriorCells)},
		{"interior cells", fmt.Sprint(stats.InteriorCells)},
		{"sphericity", fmt.Sprintf("%.3f", stats.Sphericity)},
		{"fingerprint", fmt.Sprintf("%016x", result.Fingerprint)},
	}
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row[0])+1)
	}
	sb.WriteString(r.style(inputStyle, inputName(result.Input)+":"))
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString("  ")
		sb.WriteString(padRight(r.style(labelStyle, row[0]+":"), labelWidth))
		sb.WriteString(" ")
		sb.WriteString(r.style(valueStyle, row[1]))
		sb.WriteByte('\n')
	}
}
