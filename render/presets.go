package render

import (
	"github.com/cwbudde/algo-ambient/compose"
	"github.com/cwbudde/algo-ambient/dsp/dynamics"
	"github.com/cwbudde/algo-ambient/mix"
)

// Warm renders the default track: the warm autumn score under the warm mix
// plan and the house master chain.
func Warm(opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)
	return Soundtrack(cfg, compose.WarmLayers(cfg.Seed), mix.WarmPlan(), mix.DefaultMaster(cfg.SampleRate))
}

// Chamber renders the chamber score with a flat unit-weight mix.
func Chamber(opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)
	layers := compose.ChamberLayers()
	return Soundtrack(cfg, layers, flatPlan(layers), mix.DefaultMaster(cfg.SampleRate))
}

// Sampled renders the sampled-instrument score from the given clips. The
// master leans slightly harder on compression than the synthesized scores
// because recorded material arrives with its own transients.
func Sampled(samples *compose.SampleSet, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)
	layers, err := compose.SampledLayers(samples)
	if err != nil {
		return nil, err
	}

	master := mix.DefaultMaster(cfg.SampleRate)
	master.Stages = []dynamics.Stage{{Threshold: 0.3, Ratio: 3}}
	master.FadeOut.Duration = 2.5
	return Soundtrack(cfg, layers, flatPlan(layers), master)
}
