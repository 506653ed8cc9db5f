package render

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-ambient/compose"
	"github.com/cwbudde/algo-ambient/mix"
)

// Soundtrack renders every layer and runs the master chain over the
// weighted mix. Configuration is validated up front; a bad config aborts
// before any layer renders.
//
// Layers render concurrently, one goroutine per layer. They share no
// mutable state, so the concurrent result is identical to a sequential
// one; the mixer is a strict barrier behind all of them.
func Soundtrack(cfg Config, layers []compose.Layer, plan []mix.Entry, master mix.Master) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := master.Validate(); err != nil {
		return nil, err
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("soundtrack needs at least one layer")
	}

	names := make(map[string]bool, len(layers))
	for _, l := range layers {
		if names[l.Name] {
			return nil, fmt.Errorf("duplicate layer name %q", l.Name)
		}
		names[l.Name] = true
	}
	for _, e := range plan {
		if !names[e.Name] {
			return nil, fmt.Errorf("mix plan references unknown layer %q", e.Name)
		}
	}

	var mu sync.Mutex
	rendered := make(map[string][]float64, len(layers))

	var g errgroup.Group
	for _, layer := range layers {
		g.Go(func() error {
			buf, err := layer.Render(cfg.RenderConfig)
			if err != nil {
				return err
			}
			mu.Lock()
			rendered[layer.Name] = buf
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return master.Mixdown(rendered, plan)
}

// flatPlan mixes every layer at unit weight, unfiltered.
func flatPlan(layers []compose.Layer) []mix.Entry {
	plan := make([]mix.Entry, len(layers))
	for i, l := range layers {
		plan[i] = mix.Entry{Name: l.Name, Weight: 1}
	}
	return plan
}
