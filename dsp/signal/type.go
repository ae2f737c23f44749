package signal

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Type selects a periodic waveform formula.
type Type int

const (
	// TypeSine is a*sin(2*pi*f*t + phase).
	TypeSine Type = iota
	// TypeCosine is a*cos(2*pi*f*t + phase).
	TypeCosine
	// TypeSquare is a*sign(sin(2*pi*f*t + phase)) with sign(0) = +1.
	TypeSquare
	// TypeSawtooth is the centered ramp a*2*(t*f - floor(0.5 + t*f)).
	TypeSawtooth
)

// ErrUnknownType is returned for a Type outside the four known waveforms.
var ErrUnknownType = fmt.Errorf("%w: unknown signal type", core.ErrInvalidArgument)

var typeNames = [...]string{
	TypeSine:     "SINE",
	TypeCosine:   "COSINE",
	TypeSquare:   "SQUARE",
	TypeSawtooth: "SAWTOOTH",
}

// Types lists all waveform types in declaration order.
func Types() []Type {
	return []Type{TypeSine, TypeCosine, TypeSquare, TypeSawtooth}
}

// Valid reports whether t names a known waveform.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(typeNames)
}

// String returns the upper-case waveform name.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a waveform by name, ignoring case and surrounding space.
func ParseType(name string) (Type, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
