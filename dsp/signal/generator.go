package signal

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Waveform generates duration seconds of the given waveform at the
// configured sample rate. See Generate.
func (g *Generator) Waveform(typ Type, freqHz, duration float64, opts ...WaveOption) ([]float64, error) {
	out, err := Generate(typ, freqHz, g.cfg.SampleRate, duration, opts...)
	if err != nil {
		return nil, err
	}
	g.cfg.Logger.Debug("generated waveform",
		slog.String("type", typ.String()),
		slog.Float64("freq_hz", freqHz),
		slog.Float64("sample_rate", g.cfg.SampleRate),
		slog.Int("samples", len(out)),
	)
	return out, nil
}

// WhiteNoise generates duration seconds of deterministic white noise in
// [-amplitude, amplitude]. The same seed always yields the same samples.
func (g *Generator) WhiteNoise(amplitude, duration float64) ([]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: noise amplitude must be >= 0: %f", core.ErrInvalidArgument, amplitude)
	}
	n, err := sampleCount(g.cfg.SampleRate, duration)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	g.cfg.Logger.Debug("generated white noise",
		slog.Int64("seed", g.seed),
		slog.Int("samples", n),
	)
	return out, nil
}
