package core

import "fmt"

// RenderConfig defines the fixed frame of one offline render: every buffer
// produced during a render shares this sample rate and duration.
type RenderConfig struct {
	SampleRate float64
	Duration   float64
}

// RenderOption mutates a RenderConfig.
type RenderOption func(*RenderConfig)

// DefaultRenderConfig returns the defaults for a short loopable track.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SampleRate: 44100,
		Duration:   12,
	}
}

// WithSampleRate sets the render sample rate in Hz.
func WithSampleRate(sampleRate float64) RenderOption {
	return func(cfg *RenderConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the total render duration in seconds.
func WithDuration(duration float64) RenderOption {
	return func(cfg *RenderConfig) {
		if duration > 0 {
			cfg.Duration = duration
		}
	}
}

// ApplyRenderOptions applies zero or more options to the default config.
func ApplyRenderOptions(opts ...RenderOption) RenderConfig {
	cfg := DefaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid configuration value.
func (c RenderConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %v", c.SampleRate)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be > 0: %v", c.Duration)
	}
	return nil
}

// Samples returns the render length in samples, truncating Duration*SampleRate.
func (c RenderConfig) Samples() int {
	return int(c.Duration * c.SampleRate)
}
