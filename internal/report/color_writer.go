// ColorWriter prints human-friendly, colorized conflicts to STDOUT.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"drone-deconflict/internal/airspace"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
	colorGray   = "\x1b[90m"
)

// ColorWriter prints conflict rows using ANSI colors, wrapping to the
// terminal width.
type ColorWriter struct {
	out   io.Writer
	width int
}

// NewColorWriter creates a ColorWriter writing to os.Stdout. The line
// width follows the terminal; non-terminal output falls back to 100
// columns.
func NewColorWriter() *ColorWriter {
	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}
	return &ColorWriter{out: os.Stdout, width: width}
}

func severityColor(s airspace.Severity) string {
	switch s {
	case airspace.SeverityHigh:
		return colorRed
	case airspace.SeverityMedium:
		return colorYellow
	default:
		return colorCyan
	}
}

// Write prints a single conflict line.
func (w *ColorWriter) Write(c airspace.Conflict) error {
	sc := severityColor(c.Severity)
	line := fmt.Sprintf("%st=%.1fs%s %s%-8s%s %s%s <-> %s%s dist=%.1fm pos1=(%.1f,%.1f,%.1f) pos2=(%.1f,%.1f,%.1f) %s%s%s",
		colorGray, c.Timestamp, colorReset,
		sc, c.Severity, colorReset,
		colorCyan, c.Drone1ID, c.Drone2ID, colorReset,
		c.Distance,
		c.Position1.X, c.Position1.Y, c.Position1.Z,
		c.Position2.X, c.Position2.Y, c.Position2.Z,
		colorGray, c.Type, colorReset)
	fmt.Fprintln(w.out, wordwrap.String(line, w.width))
	return nil
}

// WriteBatch prints multiple conflicts.
func (w *ColorWriter) WriteBatch(conflicts []airspace.Conflict) error {
	for _, c := range conflicts {
		if err := w.Write(c); err != nil {
			return err
		}
	}
	return nil
}
