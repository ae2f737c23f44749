package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// waveform evaluates one sample. arg is 2*pi*f*t + phase; ft is f*t.
type waveform func(arg, ft float64) float64

var waveforms = [...]waveform{
	TypeSine:     sine,
	TypeCosine:   cosine,
	TypeSquare:   square,
	TypeSawtooth: sawtooth,
}

func sine(arg, _ float64) float64 { return math.Sin(arg) }
func cosine(arg, _ float64) float64 { return math.Cos(arg) }

func square(arg, _ float64) float64 {
	if math.Sin(arg) >= 0 {
		return 1
	}
	return -1
}

func sawtooth(_, ft float64) float64 {
	return 2 * (ft - math.Floor(0.5+ft))
}

type waveOptions struct {
	amplitude float64
	phase     float64
}

// WaveOption sets an optional waveform parameter.
type WaveOption func(*waveOptions)

// WithAmplitude sets the peak amplitude. Default 1.0.
func WithAmplitude(amplitude float64) WaveOption {
	return func(o *waveOptions) {
		o.amplitude = amplitude
	}
}

// WithPhase sets the phase offset in radians. Default 0.0.
// Sawtooth waves ignore it.
func WithPhase(phaseRad float64) WaveOption {
	return func(o *waveOptions) {
		o.phase = phaseRad
	}
}

// Generate samples a periodic waveform of the given type.
//
// The result has floor(sampleRate*duration) samples; sample i is taken at
// t = i/sampleRate. sampleRate must be > 0 and duration >= 0.
func Generate(typ Type, freqHz, sampleRate, duration float64, opts ...WaveOption) ([]float64, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(typ))
	}
	n, err := sampleCount(sampleRate, duration)
	if err != nil {
		return nil, err
	}

	o := waveOptions{amplitude: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	f := waveforms[typ]
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = o.amplitude * f(2*math.Pi*freqHz*t+o.phase, t*freqHz)
	}
	return out, nil
}

// Times returns the sample instants i/sampleRate for i in [0, n).
func Times(n int, sampleRate float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: sample count must be >= 0: %d", core.ErrInvalidArgument, n)
	}
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / sampleRate
	}
	return out, nil
}

func sampleCount(sampleRate, duration float64) (int, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return 0, err
	}
	if !(duration >= 0) || !core.IsFinite(duration) {
		return 0, fmt.Errorf("%w: duration must be >= 0: %f", core.ErrInvalidArgument, duration)
	}
	n := math.Floor(sampleRate * duration)
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %g samples exceeds the supported length", core.ErrInvalidArgument, n)
	}
	return int(n), nil
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0: %f", core.ErrInvalidArgument, sampleRate)
	}
	return nil
}
