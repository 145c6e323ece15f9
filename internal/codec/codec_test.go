package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"firestige.xyz/evdump/internal/core"
)

func TestDecodeFileHeaderFields(t *testing.T) {
	data := []byte{
		0xd4, 0xc3, 0xb2, 0xa1, // magic
		0x02, 0x00, // major
		0x04, 0x00, // minor
		0xf0, 0xff, 0xff, 0xff, // timezone -16
		0x07, 0x00, 0x00, 0x00, // sigfigs
		0xff, 0xff, 0x00, 0x00, // snaplen 65535
		0xd8, 0x00, 0x00, 0x00, // link type 216
	}

	h, err := DecodeFileHeader(data)
	if err != nil {
		t.Fatalf("DecodeFileHeader failed: %v", err)
	}
	if h.Magic != core.MagicMicroseconds {
		t.Errorf("Expected magic 0x%08x, got 0x%08x", core.MagicMicroseconds, h.Magic)
	}
	if h.VersionMajor != 2 || h.VersionMinor != 4 {
		t.Errorf("Expected version 2.4, got %d.%d", h.VersionMajor, h.VersionMinor)
	}
	if h.ThisZone != -16 {
		t.Errorf("Expected timezone -16, got %d", h.ThisZone)
	}
	if h.SigFigs != 7 {
		t.Errorf("Expected sigfigs 7, got %d", h.SigFigs)
	}
	if h.SnapLen != 65535 {
		t.Errorf("Expected snaplen 65535, got %d", h.SnapLen)
	}
	if h.LinkType != core.LinkTypeLinuxEvdev {
		t.Errorf("Expected link type 216, got %d", h.LinkType)
	}
}

func TestFileHeaderRoundTrip(t *testing.T) {
	inputs := [][]byte{
		make([]byte, core.FileHeaderLen),
		bytes.Repeat([]byte{0xff}, core.FileHeaderLen),
		[]byte("abcdefghijklmnopqrstuvwx"),
		EncodeFileHeader(core.FileHeader{
			Magic:        core.MagicNanoseconds,
			VersionMajor: 2,
			VersionMinor: 4,
			ThisZone:     -3600,
			SnapLen:      262144,
			LinkType:     core.LinkTypeLinuxEvdev,
		}),
	}

	for _, in := range inputs {
		h, err := DecodeFileHeader(in)
		if err != nil {
			t.Fatalf("DecodeFileHeader(%x) failed: %v", in, err)
		}
		if out := EncodeFileHeader(h); !bytes.Equal(in, out) {
			t.Errorf("round trip mismatch:\n in=%x\nout=%x", in, out)
		}
	}
}

func TestRecordHeaderRoundTrip(t *testing.T) {
	want := core.RecordHeader{TsSec: 1, TsUsec: 999999, CapLen: 24, OrigLen: 24}
	got, err := DecodeRecordHeader(EncodeRecordHeader(want))
	if err != nil {
		t.Fatalf("DecodeRecordHeader failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestDecodeTooShort(t *testing.T) {
	if _, err := DecodeFileHeader(make([]byte, 23)); !errors.Is(err, core.ErrTruncatedRead) {
		t.Errorf("Expected ErrTruncatedRead for file header, got %v", err)
	}
	if _, err := DecodeRecordHeader(make([]byte, 8)); !errors.Is(err, core.ErrTruncatedRead) {
		t.Errorf("Expected ErrTruncatedRead for record header, got %v", err)
	}
}

func TestReadRecordHeaderCleanEOF(t *testing.T) {
	_, err := ReadRecordHeader(bytes.NewReader(nil))
	if err != io.EOF {
		t.Errorf("Expected io.EOF on empty source, got %v", err)
	}
}

func TestReadRecordHeaderTruncated(t *testing.T) {
	_, err := ReadRecordHeader(bytes.NewReader(make([]byte, 8)))
	if !errors.Is(err, core.ErrTruncatedRead) {
		t.Fatalf("Expected ErrTruncatedRead, got %v", err)
	}
	if err == io.EOF {
		t.Error("truncated read must be distinct from clean EOF")
	}
}

func TestReadAdvancesExactly(t *testing.T) {
	data := append(EncodeRecordHeader(core.RecordHeader{CapLen: 24}), 0xAA, 0xBB)
	r := bytes.NewReader(data)

	if _, err := ReadRecordHeader(r); err != nil {
		t.Fatalf("ReadRecordHeader failed: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 bytes left after header, got %d", r.Len())
	}
}

func TestSkip(t *testing.T) {
	r := bytes.NewReader(make([]byte, 10))
	if err := Skip(r, 6, "padding"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if err := Skip(r, 6, "padding"); !errors.Is(err, core.ErrTruncatedRead) {
		t.Errorf("Expected ErrTruncatedRead, got %v", err)
	}
}

// pcapgo writes little-endian microsecond files; our decoder must agree with it.
func TestAgreesWithPcapgoWriter(t *testing.T) {
	var buf bytes.Buffer
	w := pcapgo.NewWriter(&buf)
	if err := w.WriteFileHeader(65535, layers.LinkType(core.LinkTypeLinuxEvdev)); err != nil {
		t.Fatalf("WriteFileHeader failed: %v", err)
	}
	ts := time.Unix(1700000000, 123456000)
	payload := make([]byte, 24)
	ci := gopacket.CaptureInfo{Timestamp: ts, CaptureLength: 24, Length: 24}
	if err := w.WritePacket(ci, payload); err != nil {
		t.Fatalf("WritePacket failed: %v", err)
	}

	r := bytes.NewReader(buf.Bytes())
	fh, err := ReadFileHeader(r)
	if err != nil {
		t.Fatalf("ReadFileHeader failed: %v", err)
	}
	if fh.Magic != core.MagicMicroseconds || fh.SnapLen != 65535 || fh.LinkType != core.LinkTypeLinuxEvdev {
		t.Errorf("unexpected header %+v", fh)
	}

	rh, err := ReadRecordHeader(r)
	if err != nil {
		t.Fatalf("ReadRecordHeader failed: %v", err)
	}
	if rh.TsSec != 1700000000 || rh.TsUsec != 123456 {
		t.Errorf("Expected ts 1700000000.123456, got %d.%d", rh.TsSec, rh.TsUsec)
	}
	if rh.CapLen != 24 || rh.OrigLen != 24 {
		t.Errorf("Expected lengths 24/24, got %d/%d", rh.CapLen, rh.OrigLen)
	}
}
