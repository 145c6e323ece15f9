// Package capture drives the record loop over a pcap byte source.
package capture

import (
	"errors"
	"fmt"
	"io"

	"firestige.xyz/evdump/internal/codec"
	"firestige.xyz/evdump/internal/core"
	"firestige.xyz/evdump/internal/log"
	"firestige.xyz/evdump/internal/source"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateUnopened State = iota
	StateHeaderRead
	StateStreaming
	StateExhausted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateHeaderRead:
		return "header-read"
	case StateStreaming:
		return "streaming"
	case StateExhausted:
		return "exhausted"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// maxCapLen bounds cap_len when the file header has no usable snapshot length.
const maxCapLen = 1 << 24

// Options tune how a Session treats the file.
type Options struct {
	// StrictLength aborts when a record carries more bytes than the payload needs.
	StrictLength bool
	// SkipMagicCheck accepts files whose magic number is not a little-endian pcap magic.
	SkipMagicCheck bool
	// LinkTypeOverride, when non-zero, replaces the link type of the file header.
	LinkTypeOverride uint32
	Logger           log.Logger
}

// Record is one decoded (record header, payload) pair.
type Record struct {
	Index   int // 1-based position in the current pass
	Header  core.RecordHeader
	Payload core.Payload
	// Err is a recoverable decode problem, e.g. core.ErrUnknownEventType.
	Err error
}

// Session reads one capture file. It is not safe for concurrent use.
type Session struct {
	src      source.ByteSource
	opts     Options
	logger   log.Logger
	header   core.FileHeader
	linkType uint32
	decoder  core.PayloadDecoder

	state      State
	err        error
	firstRec   int64
	count      int
	limitPause bool
	buf        []byte
}

// Open reads the file header from src and selects the payload decoder.
func Open(src source.ByteSource, opts Options) (*Session, error) {
	s := &Session{src: src, opts: opts, logger: opts.Logger, state: StateUnopened}
	if s.logger == nil {
		s.logger = log.GetLogger()
	}

	h, err := codec.ReadFileHeader(src)
	if errors.Is(err, io.EOF) {
		err = fmt.Errorf("file header: want %d bytes, got 0: %w", core.FileHeaderLen, core.ErrTruncatedRead)
	}
	if err != nil {
		return nil, err
	}
	if err := checkMagic(h.Magic, opts.SkipMagicCheck); err != nil {
		return nil, err
	}

	lt := h.LinkType
	if opts.LinkTypeOverride != 0 {
		lt = opts.LinkTypeOverride
	}
	d, err := LookupLinkType(lt)
	if err != nil {
		return nil, err
	}

	s.header = h
	s.linkType = lt
	s.decoder = d
	s.firstRec = src.Offset()
	s.state = StateHeaderRead
	s.logger.WithFields(map[string]interface{}{
		"link_type": LinkTypeName(lt),
		"version":   fmt.Sprintf("%d.%d", h.VersionMajor, h.VersionMinor),
		"snaplen":   h.SnapLen,
	}).Debug("capture header read")
	return s, nil
}

func checkMagic(magic uint32, skip bool) error {
	switch magic {
	case core.MagicMicroseconds, core.MagicNanoseconds:
		return nil
	case core.MagicMicrosecondsSwapped, core.MagicNanosecondsSwapped:
		return fmt.Errorf("magic 0x%08x: big-endian captures are not supported: %w", magic, core.ErrBadMagic)
	}
	if skip {
		return nil
	}
	return fmt.Errorf("magic 0x%08x: %w", magic, core.ErrBadMagic)
}

// Header returns the file header read by Open.
func (s *Session) Header() core.FileHeader { return s.header }

// LinkType is the link type in effect, after any override.
func (s *Session) LinkType() uint32 { return s.linkType }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Err returns the error that aborted the session, if any.
func (s *Session) Err() error { return s.err }

// Next reads one record. It returns io.EOF at a clean end of stream and an
// error wrapping core.ErrTruncatedRead or core.ErrLengthMismatch when the
// stream is malformed. Those, and any decoder error that is not
// core.IsRecoverable, are terminal until Rewind.
func (s *Session) Next() (Record, error) {
	switch s.state {
	case StateAborted:
		return Record{}, s.err
	case StateExhausted:
		if !s.limitPause {
			return Record{}, io.EOF
		}
	}
	s.state = StateStreaming
	s.limitPause = false

	rh, err := codec.ReadRecordHeader(s.src)
	if errors.Is(err, io.EOF) {
		s.state = StateExhausted
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, s.abort(err)
	}

	if limit := s.capLimit(); rh.CapLen > limit {
		return Record{}, s.abort(fmt.Errorf("record %d: cap_len %d exceeds limit %d: %w",
			s.count+1, rh.CapLen, limit, core.ErrLengthMismatch))
	}
	want := s.decoder.Size()
	if want == 0 {
		want = int(rh.CapLen)
	}
	if int64(rh.CapLen) < int64(want) {
		return Record{}, s.abort(fmt.Errorf("record %d: cap_len %d < %s payload size %d: %w",
			s.count+1, rh.CapLen, s.decoder.Name(), want, core.ErrLengthMismatch))
	}
	extra := int64(rh.CapLen) - int64(want)
	if extra > 0 && s.opts.StrictLength {
		return Record{}, s.abort(fmt.Errorf("record %d: cap_len %d > %s payload size %d: %w",
			s.count+1, rh.CapLen, s.decoder.Name(), want, core.ErrLengthMismatch))
	}

	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	buf := s.buf[:want]
	if err := codec.ReadExact(s.src, buf, "payload"); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("payload: want %d bytes, got 0: %w", want, core.ErrTruncatedRead)
		}
		return Record{}, s.abort(err)
	}
	if extra > 0 {
		if err := codec.Skip(s.src, extra, "payload trailer"); err != nil {
			return Record{}, s.abort(err)
		}
		s.logger.WithField("record", s.count+1).Debugf("skipped %d trailing payload bytes", extra)
	}

	p, perr := s.decoder.Decode(buf)
	if p == nil && perr == nil {
		perr = fmt.Errorf("%s decoder returned no payload: %w", s.decoder.Name(), core.ErrTruncatedRead)
	}
	if p == nil || (perr != nil && !core.IsRecoverable(perr)) {
		return Record{}, s.abort(fmt.Errorf("record %d: %w", s.count+1, perr))
	}
	s.count++
	return Record{Index: s.count, Header: rh, Payload: p, Err: perr}, nil
}

// capLimit is the largest cap_len a record may carry: the file's snapshot
// length, bounded by maxCapLen.
func (s *Session) capLimit() uint32 {
	if s.header.SnapLen == 0 || s.header.SnapLen > maxCapLen {
		return maxCapLen
	}
	return s.header.SnapLen
}

func (s *Session) abort(err error) error {
	s.state = StateAborted
	s.err = fmt.Errorf("at offset %d: %w", s.src.Offset(), err)
	return s.err
}

// Rewind repositions the source on the first record so a new pass can start
// without decoding the file header again.
func (s *Session) Rewind() error {
	if err := s.src.SeekTo(s.firstRec); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	s.state = StateHeaderRead
	s.err = nil
	s.count = 0
	s.limitPause = false
	return nil
}
