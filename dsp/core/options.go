package core

import "log/slog"

// ProcessorConfig defines settings shared by the configured processors
// (signal generators and plot delegation).
type ProcessorConfig struct {
	SampleRate float64
	Logger     *slog.Logger
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 48 kHz configuration that logs nowhere.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithSampleRate sets the processing sample rate.
// Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithLogger sets the logger used for debug records. A nil logger is ignored.
func WithLogger(logger *slog.Logger) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
