// Package source provides the sequential byte sources a capture session reads from.
package source

import (
	"bufio"
	"fmt"
	"io"

	"firestige.xyz/evdump/internal/core"
)

// ByteSource is a forward-only stream that can optionally be repositioned.
type ByteSource interface {
	io.Reader
	// Offset is the number of bytes consumed from the start of the stream.
	Offset() int64
	// SeekTo repositions the stream; core.ErrNotSeekable if unsupported.
	SeekTo(off int64) error
}

const defaultBufferSize = 64 * 1024

// Reader adapts an io.Reader into a buffered ByteSource.
type Reader struct {
	r      io.Reader
	seeker io.Seeker
	br     *bufio.Reader
	off    int64
}

// New wraps r. Seeking is available when r also implements io.Seeker.
func New(r io.Reader) *Reader {
	s := &Reader{
		r:  r,
		br: bufio.NewReaderSize(r, defaultBufferSize),
	}
	if sk, ok := r.(io.Seeker); ok {
		s.seeker = sk
	}
	return s
}

func (s *Reader) Read(p []byte) (int, error) {
	n, err := s.br.Read(p)
	s.off += int64(n)
	return n, err
}

func (s *Reader) Offset() int64 {
	return s.off
}

func (s *Reader) SeekTo(off int64) error {
	if s.seeker == nil {
		return core.ErrNotSeekable
	}
	if _, err := s.seeker.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seek to %d: %w", off, err)
	}
	s.br.Reset(s.r)
	s.off = off
	return nil
}
