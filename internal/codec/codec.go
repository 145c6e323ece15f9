// Package codec reads and decodes the fixed-layout little-endian pcap structures.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"firestige.xyz/evdump/internal/core"
)

// DecodeFileHeader decodes the 24-byte pcap global header.
// Field semantics (magic, version) are not validated here.
func DecodeFileHeader(data []byte) (core.FileHeader, error) {
	if len(data) < core.FileHeaderLen {
		return core.FileHeader{}, shortErr("file header", core.FileHeaderLen, len(data))
	}
	return core.FileHeader{
		Magic:        binary.LittleEndian.Uint32(data[0:4]),
		VersionMajor: binary.LittleEndian.Uint16(data[4:6]),
		VersionMinor: binary.LittleEndian.Uint16(data[6:8]),
		ThisZone:     int32(binary.LittleEndian.Uint32(data[8:12])),
		SigFigs:      binary.LittleEndian.Uint32(data[12:16]),
		SnapLen:      binary.LittleEndian.Uint32(data[16:20]),
		LinkType:     binary.LittleEndian.Uint32(data[20:24]),
	}, nil
}

// EncodeFileHeader is the inverse of DecodeFileHeader.
func EncodeFileHeader(h core.FileHeader) []byte {
	buf := make([]byte, core.FileHeaderLen)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.VersionMajor)
	binary.LittleEndian.PutUint16(buf[6:8], h.VersionMinor)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(h.ThisZone))
	binary.LittleEndian.PutUint32(buf[12:16], h.SigFigs)
	binary.LittleEndian.PutUint32(buf[16:20], h.SnapLen)
	binary.LittleEndian.PutUint32(buf[20:24], h.LinkType)
	return buf
}

// DecodeRecordHeader decodes the 16-byte per-record header.
func DecodeRecordHeader(data []byte) (core.RecordHeader, error) {
	if len(data) < core.RecordHeaderLen {
		return core.RecordHeader{}, shortErr("record header", core.RecordHeaderLen, len(data))
	}
	return core.RecordHeader{
		TsSec:   binary.LittleEndian.Uint32(data[0:4]),
		TsUsec:  binary.LittleEndian.Uint32(data[4:8]),
		CapLen:  binary.LittleEndian.Uint32(data[8:12]),
		OrigLen: binary.LittleEndian.Uint32(data[12:16]),
	}, nil
}

// EncodeRecordHeader is the inverse of DecodeRecordHeader.
func EncodeRecordHeader(h core.RecordHeader) []byte {
	buf := make([]byte, core.RecordHeaderLen)
	binary.LittleEndian.PutUint32(buf[0:4], h.TsSec)
	binary.LittleEndian.PutUint32(buf[4:8], h.TsUsec)
	binary.LittleEndian.PutUint32(buf[8:12], h.CapLen)
	binary.LittleEndian.PutUint32(buf[12:16], h.OrigLen)
	return buf
}

// ReadFileHeader reads exactly 24 bytes from r and decodes them.
func ReadFileHeader(r io.Reader) (core.FileHeader, error) {
	var buf [core.FileHeaderLen]byte
	if err := ReadExact(r, buf[:], "file header"); err != nil {
		return core.FileHeader{}, err
	}
	return DecodeFileHeader(buf[:])
}

// ReadRecordHeader reads exactly 16 bytes from r and decodes them.
// io.EOF is returned untouched when r was exhausted before the first byte.
func ReadRecordHeader(r io.Reader) (core.RecordHeader, error) {
	var buf [core.RecordHeaderLen]byte
	if err := ReadExact(r, buf[:], "record header"); err != nil {
		return core.RecordHeader{}, err
	}
	return DecodeRecordHeader(buf[:])
}

// ReadExact fills p from r. It returns io.EOF when no byte was available and
// an error wrapping core.ErrTruncatedRead on a short read.
func ReadExact(r io.Reader, p []byte, what string) error {
	n, err := io.ReadFull(r, p)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return shortErr(what, len(p), n)
	case errors.Is(err, io.EOF):
		return io.EOF
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// Skip discards exactly n bytes from r.
func Skip(r io.Reader, n int64, what string) error {
	got, err := io.CopyN(io.Discard, r, n)
	if got == n {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return shortErr(what, int(n), int(got))
	}
	return fmt.Errorf("%s: %w", what, err)
}

func shortErr(what string, want, got int) error {
	return fmt.Errorf("%s: want %d bytes, got %d: %w", what, want, got, core.ErrTruncatedRead)
}
