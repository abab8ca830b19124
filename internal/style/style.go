// Package style colors rendered lines for terminal display.
package style

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"hellman/internal/config"
	"hellman/pkg/output"
)

// Styles holds the lipgloss styles for a rendered line.
type Styles struct {
	Marker  lipgloss.Style
	Text    lipgloss.Style
	Numeric lipgloss.Style
	enabled bool
}

// New returns styles for w according to mode. With ColorAuto styling is only
// enabled when w is a terminal.
func New(w io.Writer, mode config.ColorMode) Styles {
	enabled := mode == config.ColorAlways ||
		(mode == config.ColorAuto && IsTerminal(w))
	if !enabled {
		return Styles{}
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Marker:  base.Foreground(lipgloss.Color("2")).Bold(true), // bold green
		Text:    base.Foreground(lipgloss.Color("6")),            // cyan
		Numeric: base.Foreground(lipgloss.Color("3")),            // yellow
		enabled: true,
	}
}

// Enabled reports whether Line adds escape sequences.
func (s Styles) Enabled() bool {
	return s.enabled
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Line styles a rendered line token by token. Text fragments may contain
// spaces, so a token starting with a colon extends to the next token
// ending with one.
func (s Styles) Line(line string) string {
	if !s.enabled {
		return line
	}

	rest, ok := strings.CutPrefix(line, output.Marker)
	if !ok {
		return line
	}

	var b strings.Builder
	b.WriteString(render(s.Marker, output.Marker))

	fields := strings.Split(strings.TrimPrefix(rest, " "), " ")
	if rest == "" {
		fields = nil
	}
	for i := 0; i < len(fields); i++ {
		b.WriteByte(' ')
		if !strings.HasPrefix(fields[i], ":") {
			b.WriteString(render(s.Numeric, fields[i]))
			continue
		}
		j := i
		for j < len(fields)-1 && !closesText(fields[j], j == i) {
			j++
		}
		b.WriteString(render(s.Text, strings.Join(fields[i:j+1], " ")))
		i = j
	}
	return b.String()
}

// render styles each line of str on its own. lipgloss pads a multi-line
// block to its widest line, which would change the fragment text.
func render(st lipgloss.Style, str string) string {
	parts := strings.Split(str, "\n")
	for i, part := range parts {
		parts[i] = st.Render(part)
	}
	return strings.Join(parts, "\n")
}

func closesText(field string, first bool) bool {
	if first {
		return len(field) >= 2 && strings.HasSuffix(field, ":")
	}
	return strings.HasSuffix(field, ":")
}
