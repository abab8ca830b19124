// Package report summarizes collected result lines as markdown or HTML.
package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects the report encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// DefaultTitle is used when no title is configured.
const DefaultTitle = "Output report"

// ParseFormat validates a format name. The empty string selects markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatMarkdown:
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render produces the report for lines in format f.
func Render(f Format, title string, lines []string) (string, error) {
	if title == "" {
		title = DefaultTitle
	}
	switch f {
	case FormatMarkdown:
		return Markdown(title, lines), nil
	case FormatHTML:
		return HTMLDocument(title, lines)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Markdown lists lines verbatim inside a fenced code block, under a heading
// and a line count.
func Markdown(title string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	switch len(lines) {
	case 0:
		b.WriteString("No result lines.\n")
		return b.String()
	case 1:
		b.WriteString("1 result line.\n\n")
	default:
		fmt.Fprintf(&b, "%d result lines.\n\n", len(lines))
	}

	fence := codeFence(lines)
	b.WriteString(fence + "text\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(fence + "\n")
	return b.String()
}

// codeFence returns a backtick fence longer than any backtick run at the
// start of a line, so no line can close the block early.
func codeFence(lines []string) string {
	longest := 0
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		n := len(trimmed) - len(strings.TrimLeft(trimmed, "`"))
		if n > longest {
			longest = n
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}
