package render

import (
	"github.com/cwbudde/algo-ambient/dsp/core"
)

// DefaultSeed seeds the stochastic score elements when no override is
// given, so two default renders are bit-identical.
const DefaultSeed = 42

// Config is the frame for one full pipeline run: the shared render frame
// plus the seed driving every stochastic score element.
type Config struct {
	core.RenderConfig
	Seed int64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		RenderConfig: core.DefaultRenderConfig(),
		Seed:         DefaultSeed,
	}
}

// WithSampleRate sets the render sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the total render duration in seconds.
func WithDuration(duration float64) Option {
	return func(cfg *Config) {
		if duration > 0 {
			cfg.Duration = duration
		}
	}
}

// WithSeed sets the seed for stochastic score placement and noise.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
