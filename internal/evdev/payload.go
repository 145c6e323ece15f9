// Package evdev decodes LINKTYPE_LINUX_EVDEV payloads: Linux input-subsystem
// events carried as 24-byte little-endian records.
package evdev

import (
	"encoding/binary"
	"fmt"
	"time"

	"firestige.xyz/evdump/internal/core"
)

// PayloadSize is the on-disk size of one input event.
const PayloadSize = 24

// Payload mirrors the captured input_event layout.
type Payload struct {
	TsSec  uint64
	TsUsec uint64
	Type   uint16
	Code   uint16
	Value  uint32
}

// DecodePayload decodes the first 24 bytes of data.
func DecodePayload(data []byte) (Payload, error) {
	if len(data) < PayloadSize {
		return Payload{}, fmt.Errorf("evdev payload: want %d bytes, got %d: %w",
			PayloadSize, len(data), core.ErrTruncatedRead)
	}
	return Payload{
		TsSec:  binary.LittleEndian.Uint64(data[0:8]),
		TsUsec: binary.LittleEndian.Uint64(data[8:16]),
		Type:   binary.LittleEndian.Uint16(data[16:18]),
		Code:   binary.LittleEndian.Uint16(data[18:20]),
		Value:  binary.LittleEndian.Uint32(data[20:24]),
	}, nil
}

// Encode is the inverse of DecodePayload.
func (p Payload) Encode() []byte {
	buf := make([]byte, PayloadSize)
	binary.LittleEndian.PutUint64(buf[0:8], p.TsSec)
	binary.LittleEndian.PutUint64(buf[8:16], p.TsUsec)
	binary.LittleEndian.PutUint16(buf[16:18], p.Type)
	binary.LittleEndian.PutUint16(buf[18:20], p.Code)
	binary.LittleEndian.PutUint32(buf[20:24], p.Value)
	return buf
}

// Time returns the kernel timestamp of the event.
func (p Payload) Time() time.Time {
	return time.Unix(int64(p.TsSec), int64(p.TsUsec)*int64(time.Microsecond)).UTC()
}
