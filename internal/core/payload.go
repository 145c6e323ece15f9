package core

// Field is one named value of a decoded payload, used by detailed output.
type Field struct {
	Name  string
	Value any
}

// Payload is a link-type specific decoded record body.
type Payload interface {
	// Render returns the one-line text form. A non-nil error is a recoverable
	// lookup problem; the returned line is still usable.
	Render() (string, error)
	Fields() []Field
}

// PayloadDecoder interprets the captured bytes of one link type.
type PayloadDecoder interface {
	Name() string
	// Size is the fixed payload length; 0 means variable.
	Size() int
	// Decode may return a usable Payload together with a recoverable error.
	Decode(data []byte) (Payload, error)
}
