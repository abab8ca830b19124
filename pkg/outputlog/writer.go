package outputlog

import (
	"io"
	"log/slog"

	"hellman/pkg/output"
)

type LineWriter interface {
	// Write queues o for writing. Rendering happens on the caller's
	// goroutine.
	Write(o output.Output)

	// Channel returns a channel to write already rendered lines.
	Channel() chan<- string

	// Close closes the writer, waits for all pending writes to complete and
	// returns the first write error.
	Close() error
}

type Writer struct {
	lines chan string
	done  chan struct{}
	err   error
}

var _ LineWriter = &Writer{}

// Write queues the rendered form of o.
func (w *Writer) Write(o output.Output) {
	w.lines <- o.Render()
}

// Channel returns a channel for writing rendered lines.
// Do not close the returned channel. Call Close() on the writer instead.
func (w *Writer) Channel() chan<- string {
	return w.lines
}

// Close closes the writer and waits for all pending writes to complete
func (w *Writer) Close() error {
	close(w.lines)
	<-w.done
	return w.err
}

// NewWriter creates a Writer that writes one line per output to writer.
// Write errors are logged to logger (slog.Default() when nil); the first
// one is returned by Close. Lines queued after a failed write are dropped.
func NewWriter(writer io.Writer, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}

	w := &Writer{
		lines: make(chan string, 100),
		done:  make(chan struct{}),
	}

	// Single goroutine that owns the io.Writer
	go func() {
		defer close(w.done)
		for line := range w.lines {
			if w.err != nil {
				continue
			}
			if _, err := io.WriteString(writer, line+"\n"); err != nil {
				logger.Error("Failed to write output line", "error", err)
				w.err = err
			}
		}
	}()

	return w
}
