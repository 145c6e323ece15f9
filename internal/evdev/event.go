package evdev

import (
	"fmt"
	"time"

	"firestige.xyz/evdump/internal/core"
)

// EventType is the input-subsystem category tag of an event. The value is the
// dispatch slot: tags 0 through 13 are known categories.
type EventType uint16

const (
	EvSyn EventType = iota
	EvKey
	EvRel
	EvAbs
	EvMsc
	EvSw
	EvLed
	EvSnd
	EvRep
	EvFF
	EvPwr
	EvFFStatus
	EvMax
	EvCnt

	numEventTypes = iota
)

var eventTypeNames = [numEventTypes]string{
	"EV_SYN", "EV_KEY", "EV_REL", "EV_ABS", "EV_MSC", "EV_SW", "EV_LED",
	"EV_SND", "EV_REP", "EV_FF", "EV_PWR", "EV_FF_STATUS", "EV_MAX", "EV_CNT",
}

// Known reports whether t has a defined category.
func (t EventType) Known() bool {
	return t < numEventTypes
}

func (t EventType) String() string {
	if !t.Known() {
		return fmt.Sprintf("EV_UNKNOWN(%d)", uint16(t))
	}
	return eventTypeNames[t]
}

// Event is a classified input event.
type Event struct {
	Type  EventType
	Code  uint16
	Value uint32
	Time  time.Time
}

// Classify turns a payload into an Event. A tag without a category still
// yields a usable Event, together with an error wrapping core.ErrUnknownEventType.
func Classify(p Payload) (Event, error) {
	ev := Event{
		Type:  EventType(p.Type),
		Code:  p.Code,
		Value: p.Value,
		Time:  p.Time(),
	}
	if !ev.Type.Known() {
		return ev, fmt.Errorf("event type %d: %w", p.Type, core.ErrUnknownEventType)
	}
	return ev, nil
}

// Render formats the event as one line. Catalog misses are returned as
// recoverable errors alongside a line that shows the numeric code.
func (e Event) Render() (string, error) {
	if !Implemented(e.Type) {
		return renderUnsupported(e)
	}
	return renderers[e.Type](e)
}

func (e Event) String() string {
	s, _ := e.Render()
	return s
}

// Fields lists the raw payload values, followed by the catalog entry of the
// code and the key state when they exist.
func (e Event) Fields() []core.Field {
	fields := []core.Field{
		{Name: "timestamp", Value: e.Time.Format(time.RFC3339Nano)},
		{Name: "ev_type", Value: fmt.Sprintf("%d (%s)", uint16(e.Type), e.Type)},
		{Name: "ev_code", Value: e.Code},
		{Name: "ev_value", Value: e.Value},
	}
	if c, err := LookupCode(e.Type, e.Code); err == nil {
		fields = append(fields, core.Field{Name: "code_name", Value: c.Name})
		if c.Display != "" {
			fields = append(fields, core.Field{Name: "code_display", Value: c.Display})
		}
	}
	if e.Type == EvKey {
		fields = append(fields, core.Field{Name: "key_state", Value: KeyState(e.Value)})
	}
	return fields
}

// Implemented reports whether t has a dedicated renderer.
func Implemented(t EventType) bool {
	return t.Known() && renderers[t] != nil
}

type renderFunc func(Event) (string, error)

// renderers is indexed by tag; nil slots are declared but unimplemented.
var renderers = [numEventTypes]renderFunc{
	EvSyn: renderSyn,
	EvKey: renderKey,
}

func renderSyn(e Event) (string, error) {
	c, err := SynCode(e.Code)
	if err != nil {
		return fmt.Sprintf("EV_SYN:\t%d\t%d", e.Code, e.Value), err
	}
	return fmt.Sprintf("EV_SYN:\t%s\t%d", c.Name, e.Value), nil
}

func renderKey(e Event) (string, error) {
	c, err := KeyCode(e.Code)
	if err != nil {
		return fmt.Sprintf("EV_KEY:\t%d\t%d", e.Code, e.Value), err
	}
	return fmt.Sprintf("EV_KEY:\t%s\t%d", c.Name, e.Value), nil
}

func renderUnsupported(e Event) (string, error) {
	return fmt.Sprintf("(ev_code:%d) not supported", uint16(e.Type)), nil
}
