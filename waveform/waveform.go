package waveform

import (
	"math"

	"go-gw-waveform/timeseries"
)

// Phase unwrapping constants for arctan-derived phase. The wrapped phase
// lives in (-π/2, π/2), so a jump near the π-wide branch cut is corrected
// by a full π step. The threshold sits below π to tolerate numerical noise
// at the cut.
const (
	phaseDiscont = 0.7 * math.Pi
	phaseOffset  = math.Pi
)

// Unwrap returns a new sequence free from discontinuities caused by a
// periodic boundary. Wherever the input jumps by at least discont between
// consecutive samples, every sample from the jump onward is shifted by
// offset in the direction that cancels the jump. The input is never
// modified. discont must be positive.
func Unwrap(seq []float64, discont, offset float64) []float64 {
	out := make([]float64, len(seq))
	totalOffset := 0.0
	prev := 0.0

	for i, v := range seq {
		if i > 0 {
			if v-prev >= discont {
				totalOffset -= offset
			} else if prev-v >= discont {
				totalOffset += offset
			}
		}
		out[i] = v + totalOffset
		// Compare against raw input values, not corrected output, so
		// consecutive jumps do not compound.
		prev = v
	}
	return out
}

// PhaseFromPolarizations returns the gravitational-wave phase derived from
// the plus and cross polarizations of a waveform. The wrapped phase is
// computed as arctan(h+/h×) per sample, unwrapped, and shifted so the first
// sample is exactly zero; the result is non-negative throughout. The output
// carries hPlus's sampling interval and epoch.
//
// Both inputs must have the same length; matching interval and epoch are
// the caller's responsibility. Zeros in hCross yield ±Inf/NaN per element.
func PhaseFromPolarizations(hPlus, hCross *timeseries.TimeSeries) *timeseries.TimeSeries {
	wrapped := hPlus.Div(hCross).Atan()

	p := Unwrap(wrapped.Samples(), phaseDiscont, phaseOffset)
	first := p[0]
	for i := range p {
		p[i] = math.Abs(p[i] - first)
	}
	return timeseries.New(p, hPlus.DeltaT(), hPlus.Epoch())
}

// AmplitudeFromPolarizations returns the gravitational-wave amplitude, the
// per-sample Euclidean norm sqrt(h+² + h×²) of the two polarizations. The
// output carries hPlus's sampling interval and epoch.
//
// Both inputs must have the same length.
func AmplitudeFromPolarizations(hPlus, hCross *timeseries.TimeSeries) *timeseries.TimeSeries {
	amp := make([]float64, hPlus.Len())
	for i := range amp {
		amp[i] = math.Hypot(hPlus.At(i), hCross.At(i))
	}
	return timeseries.New(amp, hPlus.DeltaT(), hPlus.Epoch())
}

// FrequencyFromPolarizations returns the instantaneous gravitational-wave
// frequency, the forward difference of the unwrapped phase divided by
// 2π·deltaT. The output has one fewer sample than the inputs and its epoch
// is shifted forward by half a sampling interval (midpoint convention).
//
// Both inputs must have the same length, which must be at least 1.
func FrequencyFromPolarizations(hPlus, hCross *timeseries.TimeSeries) *timeseries.TimeSeries {
	phase := PhaseFromPolarizations(hPlus, hCross)
	p := phase.Samples()
	dt := hPlus.DeltaT()

	freq := make([]float64, len(p)-1)
	for i := range freq {
		freq[i] = (p[i+1] - p[i]) / (2 * math.Pi * dt)
	}
	return timeseries.New(freq, dt, hPlus.Epoch()+dt/2)
}
