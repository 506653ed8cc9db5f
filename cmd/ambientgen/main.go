package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-ambient/measure/quality"
	"github.com/cwbudde/algo-ambient/mix"
	"github.com/cwbudde/algo-ambient/render"
	"github.com/cwbudde/algo-ambient/wavio"
)

func main() {
	output := flag.String("output", "ambient.wav", "Output WAV path")
	sampleRate := flag.Float64("sample-rate", 44100, "Render sample rate in Hz")
	duration := flag.Float64("duration", 12, "Track duration in seconds")
	seed := flag.Int64("seed", render.DefaultSeed, "Random seed for stochastic score elements")
	score := flag.String("score", "warm", "Score to render: warm or chamber")
	blend := flag.String("blend", "", "Blend an instrument WAV over the pad instead of a score")
	targetPeak := flag.Float64("target-peak", 0.85, "Final peak normalization target")
	analyze := flag.Bool("analyze", false, "Print the quality report after rendering")
	quiet := flag.Bool("quiet", false, "Suppress the render summary")
	flag.Parse()

	opts := []render.Option{
		render.WithSampleRate(*sampleRate),
		render.WithDuration(*duration),
		render.WithSeed(*seed),
	}

	track, err := renderTrack(*score, *blend, *sampleRate, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ambientgen error: %v\n", err)
		os.Exit(1)
	}

	if err := mix.Normalize(track, *targetPeak); err != nil {
		fmt.Fprintf(os.Stderr, "ambientgen error: %v\n", err)
		os.Exit(1)
	}

	if err := wavio.WriteMono(*output, track, int(*sampleRate)); err != nil {
		fmt.Fprintf(os.Stderr, "wav write error: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		peak, rms := stats(track)
		fmt.Printf("Wrote %s\n", *output)
		fmt.Printf("SampleRate: %.0f Hz, Duration: %.3f s, Samples: %d\n", *sampleRate, *duration, len(track))
		fmt.Printf("Peak: %.6f, RMS: %.6f\n", peak, rms)
	}

	if *analyze {
		report, err := quality.Analyze(track, quality.Config{SampleRate: *sampleRate})
		if err != nil {
			fmt.Fprintf(os.Stderr, "analyze error: %v\n", err)
			os.Exit(1)
		}
		printReport(report)
	}
}

func renderTrack(score, blendPath string, sampleRate float64, opts []render.Option) ([]float64, error) {
	if blendPath != "" {
		instrument, rate, err := wavio.ReadMono(blendPath)
		if err != nil {
			return nil, err
		}
		if float64(rate) != sampleRate {
			return nil, fmt.Errorf("instrument sample rate %d Hz does not match render rate %.0f Hz", rate, sampleRate)
		}
		return render.Blend(instrument, opts...)
	}

	switch score {
	case "warm":
		return render.Warm(opts...)
	case "chamber":
		return render.Chamber(opts...)
	default:
		return nil, fmt.Errorf("unknown score %q (want warm or chamber)", score)
	}
}

func stats(samples []float64) (peak, rms float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
		sum += v * v
	}
	return peak, math.Sqrt(sum / float64(len(samples)))
}

func printReport(r quality.Report) {
	verdict := func(ok bool) string {
		if ok {
			return "pass"
		}
		return "FAIL"
	}

	fmt.Println("Quality report:")
	fmt.Printf("  %-12s %s  warm bass %.1f%%, warm mid %.1f%%, high mid %.1f%%, high %.1f%%\n",
		"warmth", verdict(r.Warmth.Passed),
		100*r.Warmth.WarmBass, 100*r.Warmth.WarmMid, 100*r.Warmth.HighMid, 100*r.Warmth.High)
	fmt.Printf("  %-12s %s  harsh ratio %.3f%%, score %.2f\n",
		"smoothness", verdict(r.Smoothness.Passed), 100*r.Smoothness.HarshRatio, r.Smoothness.Score)
	fmt.Printf("  %-12s %s  %d peaks, consonant pairs %.1f%%\n",
		"consonance", verdict(r.Consonance.Passed), r.Consonance.PeakCount, 100*r.Consonance.Ratio)
	fmt.Printf("  %-12s %s  crest %.2f dB, RMS %.4f\n",
		"dynamics", verdict(r.Dynamics.Passed), r.Dynamics.CrestDB, r.Dynamics.RMS)
	fmt.Printf("  %-12s %s  %d windows, %d changes, std %.1f Hz\n",
		"melody", verdict(r.Melody.Passed), r.Melody.Windows, r.Melody.Changes, r.Melody.StdDevHz)
	fmt.Printf("  %-12s %s  %d/%d bands active\n",
		"fullness", verdict(r.Fullness.Passed), r.Fullness.ActiveBands, r.Fullness.TotalBands)

	if r.Pass() {
		fmt.Println("Overall: pass")
	} else {
		fmt.Println("Overall: FAIL")
	}
}
