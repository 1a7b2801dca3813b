package timeseries

import (
	"math"
	"testing"
)

const equalityThreshold = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= equalityThreshold
}

func TestAccessors(t *testing.T) {
	ts := New([]float64{1, 2, 3, 4}, 0.25, 100.0)

	if ts.Len() != 4 {
		t.Errorf("Expected Len 4, but got %d", ts.Len())
	}
	if ts.At(2) != 3 {
		t.Errorf("Expected At(2) == 3, but got %f", ts.At(2))
	}
	if ts.DeltaT() != 0.25 {
		t.Errorf("Expected deltaT 0.25, but got %f", ts.DeltaT())
	}
	if !almostEqual(ts.SampleRate(), 4.0) {
		t.Errorf("Expected sample rate 4.0, but got %f", ts.SampleRate())
	}
	if ts.Epoch() != 100.0 {
		t.Errorf("Expected epoch 100.0, but got %f", ts.Epoch())
	}
	if !almostEqual(ts.Duration(), 1.0) {
		t.Errorf("Expected duration 1.0, but got %f", ts.Duration())
	}
	if !almostEqual(ts.EndTime(), 101.0) {
		t.Errorf("Expected end time 101.0, but got %f", ts.EndTime())
	}

	times := ts.SampleTimes()
	want := []float64{100.0, 100.25, 100.5, 100.75}
	for i := range want {
		if !almostEqual(times[i], want[i]) {
			t.Errorf("SampleTimes[%d]: expected %f, but got %f", i, want[i], times[i])
		}
	}
}

func TestCopy_Independent(t *testing.T) {
	ts := New([]float64{1, 2, 3}, 0.5, 0)
	cp := ts.Copy()

	cp.Samples()[0] = 99
	if ts.At(0) != 1 {
		t.Errorf("Copy shares storage with original: got %f", ts.At(0))
	}
	if cp.DeltaT() != ts.DeltaT() || cp.Epoch() != ts.Epoch() {
		t.Error("Copy did not carry metadata")
	}
}

func TestElementwiseOps(t *testing.T) {
	a := New([]float64{1, -4, 9}, 0.1, 5.0)
	b := New([]float64{2, 2, -3}, 0.1, 5.0)

	cases := []struct {
		name string
		got  *TimeSeries
		want []float64
	}{
		{"Div", a.Div(b), []float64{0.5, -2, -3}},
		{"Sub", a.Sub(b), []float64{-1, -6, 12}},
		{"Abs", a.Abs(), []float64{1, 4, 9}},
		{"SquaredNorm", a.SquaredNorm(), []float64{1, 16, 81}},
		{"Scale", a.Scale(2), []float64{2, -8, 18}},
		{"AddScalar", a.AddScalar(1), []float64{2, -3, 10}},
		{"Atan", b.Atan(), []float64{math.Atan(2), math.Atan(2), math.Atan(-3)}},
		{"Sqrt", a.Abs().Sqrt(), []float64{1, 2, 3}},
	}

	for _, tc := range cases {
		if tc.got.Len() != len(tc.want) {
			t.Fatalf("%s: expected %d samples, but got %d", tc.name, len(tc.want), tc.got.Len())
		}
		for i := range tc.want {
			if !almostEqual(tc.got.At(i), tc.want[i]) {
				t.Errorf("%s sample %d: expected %f, but got %f", tc.name, i, tc.want[i], tc.got.At(i))
			}
		}
		if tc.got.DeltaT() != a.DeltaT() || tc.got.Epoch() != a.Epoch() {
			t.Errorf("%s: output did not carry the receiver's metadata", tc.name)
		}
	}

	// Inputs must be untouched.
	for i, want := range []float64{1, -4, 9} {
		if a.At(i) != want {
			t.Fatalf("Receiver mutated at %d: got %f", i, a.At(i))
		}
	}
	for i, want := range []float64{2, 2, -3} {
		if b.At(i) != want {
			t.Fatalf("Operand mutated at %d: got %f", i, b.At(i))
		}
	}
}

func TestDiv_ByZeroPropagates(t *testing.T) {
	a := New([]float64{1, -1, 0}, 1, 0)
	b := New([]float64{0, 0, 0}, 1, 0)

	out := a.Div(b)
	if !math.IsInf(out.At(0), 1) {
		t.Errorf("Expected +Inf, but got %f", out.At(0))
	}
	if !math.IsInf(out.At(1), -1) {
		t.Errorf("Expected -Inf, but got %f", out.At(1))
	}
	if !math.IsNaN(out.At(2)) {
		t.Errorf("Expected NaN, but got %f", out.At(2))
	}
}

func TestSqrt_NegativePropagatesNaN(t *testing.T) {
	out := New([]float64{-1}, 1, 0).Sqrt()
	if !math.IsNaN(out.At(0)) {
		t.Errorf("Expected NaN for sqrt of negative value, but got %f", out.At(0))
	}
}
