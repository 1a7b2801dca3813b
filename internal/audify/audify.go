package audify

// Pipeline converts a strain-rate float series into int16 PCM at the
// playback rate: DC removal, rate conversion, volume scaling and clipping.
type Pipeline struct {
	ratio     float64
	volume    float64
	dcBlocker *DCBlocker
	antiAlias *FIRFilter // set only when lowering the rate
}

// NewPipeline creates an audification pipeline converting inputRate samples
// per second to outputRate, with the given volume scale applied before
// clipping to the int16 range.
func NewPipeline(inputRate, outputRate, filterTaps int, volume, dcPole float64) *Pipeline {
	p := &Pipeline{
		ratio:     float64(outputRate) / float64(inputRate),
		volume:    volume,
		dcBlocker: NewDCBlocker(dcPole),
	}
	if p.ratio < 1 {
		// Lowering the rate needs an anti-alias low-pass at the new
		// Nyquist frequency, normalized to the input rate.
		cutoff := 0.5 * float64(outputRate) / float64(inputRate)
		p.antiAlias = NewFIRFilter(DesignFIRLowPass(filterTaps, cutoff))
	}
	return p
}

// Process converts a block of samples to PCM. The output length follows the
// rate ratio; when lowering the rate the anti-alias filter may withhold
// samples until enough input has accumulated.
func (p *Pipeline) Process(samples []float64) []int16 {
	blocked := make([]float64, len(samples))
	for i, v := range samples {
		blocked[i] = p.dcBlocker.Filter(v)
	}

	var resampled []float64
	if p.antiAlias != nil {
		resampled = p.antiAlias.Process(blocked, p.ratio)
	} else if p.ratio == 1 {
		resampled = blocked
	} else {
		resampled = Resample(blocked, p.ratio)
	}

	pcm := make([]int16, len(resampled))
	for i, v := range resampled {
		scaled := v * p.volume
		if scaled > 32767 {
			scaled = 32767
		} else if scaled < -32768 {
			scaled = -32768
		}
		pcm[i] = int16(scaled)
	}
	return pcm
}
