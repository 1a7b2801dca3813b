package config

// Config holds all the configuration parameters for the strain tool.
type Config struct {
	StrainSampleRate int
	PlaybackRate     int
	SampleBlockSize  int
	FilterTaps       int
	RingBufferSize   int
	VolumeScale      float64
	DCBlockerPole    float64
}

// New returns a new Config with default values.
func New() *Config {
	return &Config{
		StrainSampleRate: 16_384, // LIGO h(t) rate
		PlaybackRate:     48_000,
		SampleBlockSize:  4096,
		FilterTaps:       251,
		RingBufferSize:   2 * 16_384 * 2, // 2s of strain (h+ and h×)
		VolumeScale:      8000.0,
		DCBlockerPole:    0.995,
	}
}
