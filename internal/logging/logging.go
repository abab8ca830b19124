// Package logging sets up the slog logger used by the command line tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing human readable records to w. level is one
// of debug, info, warn or error; the empty string means warn.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl := log.WarnLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:        lvl,
		Prefix:       "hellman",
		ReportCaller: lvl == log.DebugLevel,
	})
	return slog.New(handler), nil
}
