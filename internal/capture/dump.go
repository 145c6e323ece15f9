package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"firestige.xyz/evdump/internal/core"
	"firestige.xyz/evdump/internal/metrics"
)

// DefaultBatch caps a Decode call when no limit is given.
const DefaultBatch = 500

// Sink receives rendered output, one call per record.
type Sink interface {
	Emit(text string) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(text string) error

func (f SinkFunc) Emit(text string) error { return f(text) }

// Format selects how a record is rendered.
type Format int

const (
	FormatLine Format = iota
	FormatDetail
)

// ParseFormat accepts "line" and "detail".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "line":
		return FormatLine, nil
	case "detail":
		return FormatDetail, nil
	default:
		return FormatLine, fmt.Errorf("unknown output format %q: %w", s, core.ErrConfigInvalid)
	}
}

// Outcome tells why a Decode call stopped.
type Outcome string

const (
	OutcomeExhausted Outcome = "exhausted"
	OutcomeLimit     Outcome = "limit"
	OutcomeAborted   Outcome = "aborted"
	OutcomeCanceled  Outcome = "canceled"
)

// Stats summarizes one Decode call.
type Stats struct {
	Records   int
	Recovered int
	Outcome   Outcome
}

// Decode renders up to limit records (DefaultBatch when limit <= 0) into sink.
// Errors matching core.IsRecoverable are recovered by the payload's fallback
// rendering; any other error aborts the session and is returned. Reaching the limit leaves the
// session exhausted but resumable: the next Decode continues after the last record.
func (s *Session) Decode(ctx context.Context, limit int, format Format, sink Sink) (Stats, error) {
	if limit <= 0 {
		limit = DefaultBatch
	}
	var st Stats
	lt := LinkTypeName(s.linkType)

	for st.Records < limit {
		if err := ctx.Err(); err != nil {
			st.Outcome = OutcomeCanceled
			metrics.DecodeRunsTotal.WithLabelValues(string(st.Outcome)).Inc()
			return st, err
		}

		rec, err := s.Next()
		if errors.Is(err, io.EOF) {
			st.Outcome = OutcomeExhausted
			metrics.DecodeRunsTotal.WithLabelValues(string(st.Outcome)).Inc()
			return st, nil
		}
		if err != nil {
			st.Outcome = OutcomeAborted
			metrics.DecodeRunsTotal.WithLabelValues(string(st.Outcome)).Inc()
			s.logger.WithError(err).WithField("records", st.Records).Error("capture aborted")
			return st, err
		}

		text, rerr := render(rec, format)
		if rerr != nil && !core.IsRecoverable(rerr) {
			err := s.abort(fmt.Errorf("render record %d: %w", rec.Index, rerr))
			st.Outcome = OutcomeAborted
			metrics.DecodeRunsTotal.WithLabelValues(string(st.Outcome)).Inc()
			s.logger.WithError(err).WithField("records", st.Records).Error("capture aborted")
			return st, err
		}
		for _, e := range []error{rec.Err, rerr} {
			if e == nil {
				continue
			}
			st.Recovered++
			metrics.RecordErrorsTotal.WithLabelValues(errorKind(e)).Inc()
			s.logger.WithField("record", rec.Index).WithError(e).Debug("rendered with fallback")
		}

		if err := sink.Emit(text); err != nil {
			return st, fmt.Errorf("emit record %d: %w", rec.Index, err)
		}
		st.Records++
		metrics.RecordsTotal.WithLabelValues(lt).Inc()
	}

	s.state = StateExhausted
	s.limitPause = true
	st.Outcome = OutcomeLimit
	metrics.DecodeRunsTotal.WithLabelValues(string(st.Outcome)).Inc()
	return st, nil
}

func render(rec Record, format Format) (string, error) {
	line, err := rec.Payload.Render()
	if format != FormatDetail {
		return line, err
	}

	var b strings.Builder
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "record : %d\n", rec.Index)
	fmt.Fprintf(&b, "timestamp_sec : %d\n", rec.Header.TsSec)
	fmt.Fprintf(&b, "timestamp_usec : %d\n", rec.Header.TsUsec)
	fmt.Fprintf(&b, "capture length : %d\n", rec.Header.CapLen)
	fmt.Fprintf(&b, "packet length : %d\n", rec.Header.OrigLen)
	b.WriteString("----------------------------\n")
	for _, f := range rec.Payload.Fields() {
		fmt.Fprintf(&b, "%s : %v\n", f.Name, f.Value)
	}
	b.WriteString(line)
	return b.String(), err
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, core.ErrUnknownEventType):
		return "unknown_event_type"
	case errors.Is(err, core.ErrUnknownCode):
		return "unknown_code"
	case errors.Is(err, core.ErrCodeOutOfRange):
		return "code_out_of_range"
	default:
		return "other"
	}
}
