package log

import (
	"fmt"
	"io"
	"os"
)

type MultiWriter struct {
	writers []io.Writer
}

func (m *MultiWriter) Write(p []byte) (n int, err error) {
	for _, w := range m.writers {
		_, e := w.Write(p)
		if e != nil {
			err = e
		}
	}
	return len(p), err
}

func (m *MultiWriter) Add(writer io.Writer) *MultiWriter {
	m.writers = append(m.writers, writer)
	return m
}

func (m *MultiWriter) Len() int {
	return len(m.writers)
}

func NewMultiWriter() *MultiWriter {
	return &MultiWriter{writers: make([]io.Writer, 0)}
}

// buildOutput assembles the appenders. Console output goes to stderr so that
// decoded records on stdout stay machine readable.
func buildOutput(appenders []AppenderConfig) (*MultiWriter, error) {
	m := NewMultiWriter()
	for _, a := range appenders {
		switch a.Type {
		case AppenderConsole, "":
			m.Add(os.Stderr)
		case AppenderFile:
			opt, err := decodeFileAppenderOpt(a.Options)
			if err != nil {
				return nil, err
			}
			m.AddFileAppender(opt)
		default:
			return nil, fmt.Errorf("unsupported log appender %q", a.Type)
		}
	}
	if m.Len() == 0 {
		m.Add(os.Stderr)
	}
	return m, nil
}
