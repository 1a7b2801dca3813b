package strain

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"go-gw-waveform/timeseries"
)

// ReadPolarizations decodes a 2-channel 16-bit WAV file into the two strain
// polarizations: channel 0 is h_plus, channel 1 is h_cross. Samples are
// scaled to [-1, 1), the sampling interval comes from the WAV sample rate
// and the epoch is 0.
func ReadPolarizations(path string) (hPlus, hCross *timeseries.TimeSeries, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening strain file: %w", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, nil, fmt.Errorf("%s is not a valid WAV file", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("reading PCM data: %w", err)
	}
	if decoder.NumChans != 2 {
		return nil, nil, fmt.Errorf("expected 2 channels (h_plus, h_cross), got %d", decoder.NumChans)
	}
	if decoder.BitDepth != 16 {
		return nil, nil, fmt.Errorf("expected 16-bit samples, got %d-bit", decoder.BitDepth)
	}

	numFrames := len(buf.Data) / 2
	hp := make([]float64, numFrames)
	hc := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		hp[i] = float64(buf.Data[2*i]) / 32768.0
		hc[i] = float64(buf.Data[2*i+1]) / 32768.0
	}

	deltaT := 1.0 / float64(decoder.SampleRate)
	return timeseries.New(hp, deltaT, 0), timeseries.New(hc, deltaT, 0), nil
}

// WriteSeries writes a series to path as a mono 16-bit WAV file at the
// series' sample rate. With normalize set, the series is scaled so its peak
// magnitude sits just below full scale; otherwise values are clipped to
// [-1, 1) before conversion.
func WriteSeries(path string, ts *timeseries.TimeSeries, normalize bool) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	scale := 1.0
	if normalize {
		peak := 0.0
		for _, v := range ts.Samples() {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		if peak > 0 {
			scale = 0.95 / peak
		}
	}

	sampleRate := int(math.Round(ts.SampleRate()))
	data := make([]int, ts.Len())
	for i, v := range ts.Samples() {
		scaled := v * scale * 32767.0
		if scaled > 32767 {
			scaled = 32767
		} else if scaled < -32768 {
			scaled = -32768
		}
		data[i] = int(scaled)
	}

	encoder := wav.NewEncoder(out, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finalizing WAV file: %w", err)
	}
	return nil
}
