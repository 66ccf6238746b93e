// Writer implementation printing conflicts to STDOUT
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"drone-deconflict/internal/airspace"
)

// StdoutWriter prints conflicts as JSON lines.
type StdoutWriter struct {
	Out io.Writer
}

// NewStdoutWriter creates a StdoutWriter writing to os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{Out: os.Stdout}
}

// Write outputs a single conflict.
func (w *StdoutWriter) Write(c airspace.Conflict) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(w.Out, string(data))
	return nil
}

// WriteBatch outputs multiple conflicts.
func (w *StdoutWriter) WriteBatch(conflicts []airspace.Conflict) error {
	for _, c := range conflicts {
		if err := w.Write(c); err != nil {
			return err
		}
	}
	return nil
}
