package evdev

import (
	"fmt"

	"firestige.xyz/evdump/internal/core"
)

// KeyMax is the highest EV_KEY code in the catalog.
const KeyMax = 767

// Code is a catalog entry: the symbolic kernel name and a short display form.
// Display is empty when the catalog only names the code.
type Code struct {
	Name    string
	Display string
}

var synCodes = []Code{
	{Name: "SYN_REPORT"},
	{Name: "SYN_CONFIG"},
	{Name: "SYN_MY_REPORT"},
}

// SynCode looks up an EV_SYN code. The catalog is dense, so anything past
// its end is out of range.
func SynCode(code uint16) (Code, error) {
	if int(code) >= len(synCodes) {
		return Code{}, fmt.Errorf("EV_SYN code %d: %w", code, core.ErrCodeOutOfRange)
	}
	return synCodes[code], nil
}

// KeyCode looks up an EV_KEY code. Codes above KEY_MAX are out of range,
// codes inside the range without an entry are catalog gaps.
func KeyCode(code uint16) (Code, error) {
	if code > KeyMax {
		return Code{}, fmt.Errorf("EV_KEY code %d: %w", code, core.ErrCodeOutOfRange)
	}
	c, ok := keyCodes[code]
	if !ok {
		return Code{}, fmt.Errorf("EV_KEY code %d: %w", code, core.ErrUnknownCode)
	}
	return c, nil
}

// LookupCode dispatches to the table of the given event type.
func LookupCode(t EventType, code uint16) (Code, error) {
	switch t {
	case EvSyn:
		return SynCode(code)
	case EvKey:
		return KeyCode(code)
	default:
		return Code{}, fmt.Errorf("%s has no code catalog: %w", t, core.ErrUnknownCode)
	}
}

// KeyState names an EV_KEY value.
func KeyState(value uint32) string {
	switch value {
	case 0:
		return "release"
	case 1:
		return "press"
	case 2:
		return "repeat"
	default:
		return fmt.Sprintf("value(%d)", value)
	}
}
