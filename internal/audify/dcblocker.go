package audify

// DCBlocker implements a first-order high-pass filter that removes the DC
// offset from a strain series before it is scaled to PCM.
type DCBlocker struct {
	pole  float64
	prevX float64
	prevY float64
}

// NewDCBlocker creates a new DC blocker.
// pole sets the filter pole radius; values near 1 (e.g. 0.995) give a very
// low cutoff so slow strain drift is removed without touching the band.
func NewDCBlocker(pole float64) *DCBlocker {
	return &DCBlocker{pole: pole}
}

// Filter applies the DC blocker to a single sample.
func (d *DCBlocker) Filter(x float64) float64 {
	y := x - d.prevX + d.pole*d.prevY
	d.prevX = x
	d.prevY = y
	return y
}
