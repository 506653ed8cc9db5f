package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-ambient/dsp/core"
)

func ExampleRenderConfig_Samples() {
	cfg := core.ApplyRenderOptions(core.WithSampleRate(8000), core.WithDuration(1.5))
	fmt.Println(cfg.Samples())
	// Output:
	// 12000
}

func ExampleAddScaled() {
	dst := []float64{0, 0, 0}
	core.AddScaled(dst, []float64{1, 2, 3}, 0.5)
	fmt.Println(dst)
	// Output:
	// [0.5 1 1.5]
}
