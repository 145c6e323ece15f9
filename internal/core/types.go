// Package core defines core types with zero external dependencies.
package core

import "time"

// Fixed on-disk sizes of the pcap structures.
const (
	FileHeaderLen   = 24
	RecordHeaderLen = 16
)

// Magic numbers as read with little-endian byte order.
const (
	MagicMicroseconds        uint32 = 0xa1b2c3d4
	MagicNanoseconds         uint32 = 0xa1b23c4d
	MagicMicrosecondsSwapped uint32 = 0xd4c3b2a1
	MagicNanosecondsSwapped  uint32 = 0x4d3cb2a1
)

// LinkTypeLinuxEvdev is LINKTYPE_LINUX_EVDEV, Linux evdev input events.
const LinkTypeLinuxEvdev uint32 = 216

// FileHeader is the pcap global header found at offset 0.
type FileHeader struct {
	Magic        uint32 `yaml:"magic"`
	VersionMajor uint16 `yaml:"version_major"`
	VersionMinor uint16 `yaml:"version_minor"`
	ThisZone     int32  `yaml:"timezone_offset"`
	SigFigs      uint32 `yaml:"timestamp_accuracy"`
	SnapLen      uint32 `yaml:"snapshot_length"`
	LinkType     uint32 `yaml:"link_type"`
}

// Nanosecond reports whether record timestamps carry nanoseconds instead of microseconds.
func (h FileHeader) Nanosecond() bool {
	return h.Magic == MagicNanoseconds
}

// RecordHeader precedes every captured record.
type RecordHeader struct {
	TsSec   uint32
	TsUsec  uint32
	CapLen  uint32 // bytes stored in the file
	OrigLen uint32 // bytes on the wire
}

// Timestamp converts the header timestamp, honoring the file's resolution.
func (h RecordHeader) Timestamp(nano bool) time.Time {
	if nano {
		return time.Unix(int64(h.TsSec), int64(h.TsUsec)).UTC()
	}
	return time.Unix(int64(h.TsSec), int64(h.TsUsec)*int64(time.Microsecond)).UTC()
}
