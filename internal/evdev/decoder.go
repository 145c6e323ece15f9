package evdev

import "firestige.xyz/evdump/internal/core"

// Name is the registry name of the evdev link type.
const Name = "linux_evdev"

// Decoder implements core.PayloadDecoder for LINKTYPE_LINUX_EVDEV.
type Decoder struct{}

func (Decoder) Name() string { return Name }

func (Decoder) Size() int { return PayloadSize }

// Decode returns the classified Event. An unknown event type is reported
// together with a non-nil Event so the caller can still render it.
func (Decoder) Decode(data []byte) (core.Payload, error) {
	p, err := DecodePayload(data)
	if err != nil {
		return nil, err
	}
	ev, err := Classify(p)
	return ev, err
}
