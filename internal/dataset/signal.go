package dataset

import "math"

// Sine generates n samples of a sine wave with the given frequency and
// amplitude at the given sample rate. Used by the runner's -generate mode and
// tests that need a synthetic dataset.
func Sine(n int, freq, rate, amplitude float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return samples
}
