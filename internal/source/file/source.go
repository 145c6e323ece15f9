// Package file opens capture files as byte sources.
package file

import (
	"fmt"
	"io"
	"os"

	"firestige.xyz/evdump/internal/source"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Source is a capture file opened for reading.
type Source struct {
	*source.Reader
	path string
	f    *os.File
}

// Open opens path, or standard input for "-". Standard input is not seekable.
func Open(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if path == Stdin {
		return &Source{Reader: source.New(struct{ io.Reader }{os.Stdin}), path: path}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file %s: %w", path, err)
	}
	return &Source{Reader: source.New(f), path: path, f: f}, nil
}

func (s *Source) Path() string {
	return s.path
}

func (s *Source) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
