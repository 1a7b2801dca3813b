package timeseries

import "math"

// TimeSeries is a uniformly sampled sequence of real values tagged with its
// sampling interval and the absolute time of its first sample.
type TimeSeries struct {
	samples []float64
	deltaT  float64
	epoch   float64
}

// New creates a TimeSeries from a sample slice, the sampling interval in
// seconds and the epoch (absolute time of sample 0) in seconds. The series
// takes ownership of the slice; the caller must not modify it afterwards.
func New(samples []float64, deltaT, epoch float64) *TimeSeries {
	return &TimeSeries{
		samples: samples,
		deltaT:  deltaT,
		epoch:   epoch,
	}
}

// Len returns the number of samples in the series.
func (ts *TimeSeries) Len() int {
	return len(ts.samples)
}

// At returns the sample at index i.
func (ts *TimeSeries) At(i int) float64 {
	return ts.samples[i]
}

// Samples returns the backing sample slice. The slice is shared with the
// series; callers that need an independent copy should use Copy.
func (ts *TimeSeries) Samples() []float64 {
	return ts.samples
}

// DeltaT returns the sampling interval in seconds.
func (ts *TimeSeries) DeltaT() float64 {
	return ts.deltaT
}

// SampleRate returns the number of samples per second.
func (ts *TimeSeries) SampleRate() float64 {
	return 1.0 / ts.deltaT
}

// Epoch returns the absolute time of the first sample in seconds.
func (ts *TimeSeries) Epoch() float64 {
	return ts.epoch
}

// Duration returns the length of the series in seconds.
func (ts *TimeSeries) Duration() float64 {
	return float64(len(ts.samples)) * ts.deltaT
}

// EndTime returns the absolute time one sampling interval past the last
// sample, i.e. Epoch() + Duration().
func (ts *TimeSeries) EndTime() float64 {
	return ts.epoch + ts.Duration()
}

// SampleTimes returns the absolute time of every sample.
func (ts *TimeSeries) SampleTimes() []float64 {
	times := make([]float64, len(ts.samples))
	for i := range times {
		times[i] = ts.epoch + float64(i)*ts.deltaT
	}
	return times
}

// Copy returns a deep copy of the series.
func (ts *TimeSeries) Copy() *TimeSeries {
	samples := make([]float64, len(ts.samples))
	copy(samples, ts.samples)
	return New(samples, ts.deltaT, ts.epoch)
}

// emptyLike allocates a fresh same-length output series carrying the
// receiver's metadata.
func (ts *TimeSeries) emptyLike() *TimeSeries {
	return New(make([]float64, len(ts.samples)), ts.deltaT, ts.epoch)
}

// Div returns the elementwise quotient ts / other as a new series carrying
// the receiver's metadata. Both series must have the same length; division
// by zero yields ±Inf or NaN per element.
func (ts *TimeSeries) Div(other *TimeSeries) *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = v / other.samples[i]
	}
	return out
}

// Sub returns the elementwise difference ts - other as a new series carrying
// the receiver's metadata. Both series must have the same length.
func (ts *TimeSeries) Sub(other *TimeSeries) *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = v - other.samples[i]
	}
	return out
}

// Atan returns the elementwise arctangent of the series as a new series.
// Outputs lie in (-π/2, π/2).
func (ts *TimeSeries) Atan() *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = math.Atan(v)
	}
	return out
}

// Abs returns the elementwise absolute value of the series as a new series.
func (ts *TimeSeries) Abs() *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = math.Abs(v)
	}
	return out
}

// Sqrt returns the elementwise square root of the series as a new series.
// Negative inputs yield NaN per element.
func (ts *TimeSeries) Sqrt() *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = math.Sqrt(v)
	}
	return out
}

// SquaredNorm returns the elementwise squared magnitude of the series as a
// new series.
func (ts *TimeSeries) SquaredNorm() *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = v * v
	}
	return out
}

// Scale returns the series multiplied elementwise by k as a new series.
func (ts *TimeSeries) Scale(k float64) *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = v * k
	}
	return out
}

// AddScalar returns the series with k added to every sample as a new series.
func (ts *TimeSeries) AddScalar(k float64) *TimeSeries {
	out := ts.emptyLike()
	for i, v := range ts.samples {
		out.samples[i] = v + k
	}
	return out
}
