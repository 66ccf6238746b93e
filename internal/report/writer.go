// Conflict output writers for deconfliction runs.
package report

import "drone-deconflict/internal/airspace"

// ConflictWriter is an interface to support different output writers.
type ConflictWriter interface {
	Write(airspace.Conflict) error
}

// Optional: writers can also support batch mode.
type batchWriter interface {
	WriteBatch([]airspace.Conflict) error
}

// MultiWriter fans conflicts out to multiple writers.
type MultiWriter struct {
	writers []ConflictWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(writers ...ConflictWriter) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write sends a conflict to all writers.
func (mw *MultiWriter) Write(c airspace.Conflict) error {
	for _, w := range mw.writers {
		if err := w.Write(c); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatch sends multiple conflicts to all writers, using batch mode
// where supported.
func (mw *MultiWriter) WriteBatch(conflicts []airspace.Conflict) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchWriter); ok {
			if err := bw.WriteBatch(conflicts); err != nil {
				return err
			}
			continue
		}
		for _, c := range conflicts {
			if err := w.Write(c); err != nil {
				return err
			}
		}
	}
	return nil
}
