package audify

import "math"

// DesignFIRLowPass creates a low-pass FIR filter using the windowed-sinc method.
func DesignFIRLowPass(numTaps int, cutoff float64) []float64 {
	taps := make([]float64, numTaps)
	M := float64(numTaps - 1)
	// The cutoff frequency must be normalized to the Nyquist frequency (0.5 * sample_rate)
	fc := cutoff * 2
	for n := 0; n < numTaps; n++ {
		x := float64(n) - M/2
		if x == 0 {
			taps[n] = fc
		} else {
			taps[n] = fc * math.Sin(math.Pi*fc*x) / (math.Pi * fc * x)
		}
		// Apply Hamming window
		taps[n] *= 0.54 - 0.46*math.Cos(2*math.Pi*float64(n)/M)
	}
	// Normalize
	sum := 0.0
	for _, t := range taps {
		sum += t
	}
	for i := range taps {
		taps[i] /= sum
	}
	return taps
}

// FIRFilter implements a stateful, block-based Finite Impulse Response filter
// that resamples by the given ratio while filtering. It is used as the
// anti-alias stage when the playback rate is below the strain rate.
type FIRFilter struct {
	taps  []float64
	state []float64
}

// NewFIRFilter creates a new FIR filter with the given taps.
func NewFIRFilter(taps []float64) *FIRFilter {
	return &FIRFilter{
		taps:  taps,
		state: make([]float64, len(taps)-1),
	}
}

// Process filters a block of input samples and updates the filter's internal state.
func (f *FIRFilter) Process(input []float64, ratio float64) []float64 {
	invRatio := 1.0 / ratio

	buffer := make([]float64, len(f.state)+len(input))
	copy(buffer, f.state)
	copy(buffer[len(f.state):], input)

	// Conservative count of output samples that can be safely produced
	// from the buffered data.
	outputLen := int(float64(len(buffer)-len(f.taps)+1) * ratio)
	if outputLen <= 0 {
		f.state = buffer // Not enough data, save for next time
		return nil
	}
	output := make([]float64, outputLen)

	for i := 0; i < outputLen; i++ {
		inPos := float64(i) * invRatio
		start := int(inPos)

		var acc float64
		for j, tap := range f.taps {
			acc += buffer[start+j] * tap
		}
		output[i] = acc
	}

	// The state for the next run is the last (filter_length - 1) samples of the buffer.
	f.state = buffer[len(buffer)-(len(f.taps)-1):]
	return output
}
