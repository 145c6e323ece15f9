// Package console writes rendered records to a terminal or pipe.
package console

import (
	"bufio"
	"io"
)

const Name = "console"

// Sink writes one line per record through a buffered writer.
type Sink struct {
	w *bufio.Writer
}

func NewSink(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

func (s *Sink) Emit(text string) error {
	if _, err := s.w.WriteString(text); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *Sink) Flush() error {
	return s.w.Flush()
}

func (s *Sink) Close() error {
	return s.Flush()
}
