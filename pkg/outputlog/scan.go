package outputlog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"hellman/pkg/output"
)

// maxLineSize bounds a single scanned line.
const maxLineSize = 1024 * 1024

// IsMarkerLine reports whether line is a result line. The marker must be a
// whole token: "OUTPUT" and "OUTPUT 1" match, "OUTPUTS" does not.
func IsMarkerLine(line string) bool {
	rest, ok := strings.CutPrefix(line, output.Marker)
	return ok && (rest == "" || rest[0] == ' ')
}

// Scan returns the result lines of r in order.
func Scan(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := ansi.Strip(strings.TrimSuffix(scanner.Text(), "\r"))
		if IsMarkerLine(line) {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("scanning output: %w", err)
	}
	return lines, nil
}
