package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"go-gw-waveform/internal/audify"
	"go-gw-waveform/internal/config"
	"go-gw-waveform/internal/ringbuffer"
	"go-gw-waveform/internal/strain"
	"go-gw-waveform/timeseries"
	"go-gw-waveform/waveform"
)

func main() {
	play := flag.Bool("play", false, "play the audified amplitude envelope")
	outDir := flag.String("out", ".", "directory for the derived WAV files")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: gwstrain [-play] [-out dir] <strain.wav>")
		os.Exit(1)
	}

	// Get default configuration
	cfg := config.New()

	fmt.Println("Opening strain file...")
	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		log.Fatalf("%s is not a valid WAV file", flag.Arg(0))
	}
	if err := decoder.FwdToPCM(); err != nil {
		log.Fatal("Failed to seek to PCM data:", err)
	}

	fmt.Printf("[INFO] Detected WAV format: Bit Depth: %d, Sample Rate: %d, Channels: %d\n",
		decoder.BitDepth, decoder.SampleRate, decoder.NumChans)
	if decoder.BitDepth != 16 {
		log.Fatalf("FATAL: This program is hardcoded to process 16-bit strain files, but detected %d-bit.", decoder.BitDepth)
	}
	if decoder.NumChans != 2 {
		log.Fatalf("FATAL: Expected 2 channels (h_plus, h_cross), but detected %d.", decoder.NumChans)
	}
	sampleRate := int(decoder.SampleRate)
	if sampleRate != cfg.StrainSampleRate {
		fmt.Printf("[WARN] Sample rate %d differs from the usual strain rate %d\n", sampleRate, cfg.StrainSampleRate)
	}

	fmt.Println("Creating ring buffer...")
	rb := ringbuffer.New(cfg.RingBufferSize)

	go readFileIntoBuffer(decoder, rb, cfg)

	fmt.Println("Collecting strain samples...")
	hPlus, hCross := collectPolarizations(rb, cfg, sampleRate)
	fmt.Printf("[INFO] Read %d strain samples (%.2fs)\n", hPlus.Len(), hPlus.Duration())

	fmt.Println("Deriving amplitude, phase and frequency...")
	amp := waveform.AmplitudeFromPolarizations(hPlus, hCross)
	phase := waveform.PhaseFromPolarizations(hPlus, hCross)
	freq := waveform.FrequencyFromPolarizations(hPlus, hCross)

	outputs := []struct {
		name   string
		series *timeseries.TimeSeries
	}{
		{"amplitude.wav", amp},
		{"phase.wav", phase},
		{"frequency.wav", freq},
	}
	for _, out := range outputs {
		path := filepath.Join(*outDir, out.name)
		if err := strain.WriteSeries(path, out.series, true); err != nil {
			log.Fatal("Failed to write ", path, ": ", err)
		}
		fmt.Println("Wrote", path)
	}

	if *play {
		playAmplitude(amp, cfg, sampleRate)
	}
}

// readFileIntoBuffer streams interleaved h_plus/h_cross frames from the WAV
// decoder into the ring buffer, scaled to [-1, 1).
func readFileIntoBuffer(decoder *wav.Decoder, rb *ringbuffer.RingBuffer, cfg *config.Config) {
	defer rb.Close() // Ensure the buffer is closed when this function exits.

	// Preallocate reusable buffer for streamed PCM data
	buf := &audio.IntBuffer{
		Format: decoder.Format(),
		Data:   make([]int, cfg.SampleBlockSize*2), // 2 = h_plus + h_cross
	}

	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			fmt.Println("Strain read error:", err)
			break
		}
		if n == 0 {
			fmt.Println("End of strain file reached")
			break
		}

		frames := make([]float64, n)
		for i := 0; i < n; i++ {
			frames[i] = float64(buf.Data[i]) / 32768.0
		}
		rb.Write(frames)
	}
}

// collectPolarizations drains the ring buffer block by block and
// deinterleaves the frames into the two polarization series.
func collectPolarizations(rb *ringbuffer.RingBuffer, cfg *config.Config, sampleRate int) (*timeseries.TimeSeries, *timeseries.TimeSeries) {
	frameSize := cfg.SampleBlockSize * 2 // Two samples (h+ and h×) per frame.

	var hp, hc []float64
	for {
		raw := rb.Read(frameSize)
		// If Read returns nil, the buffer is closed and empty, so we can exit the loop.
		if raw == nil {
			break
		}
		for i := 0; i+1 < len(raw); i += 2 {
			hp = append(hp, raw[i])
			hc = append(hc, raw[i+1])
		}
	}

	deltaT := 1.0 / float64(sampleRate)
	return timeseries.New(hp, deltaT, 0), timeseries.New(hc, deltaT, 0)
}

// playAmplitude audifies the amplitude envelope and plays it at the
// configured playback rate.
func playAmplitude(amp *timeseries.TimeSeries, cfg *config.Config, sampleRate int) {
	fmt.Println("Setting up audio...")
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.PlaybackRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		log.Fatal(err)
	}
	<-ready

	pipeline := audify.NewPipeline(sampleRate, cfg.PlaybackRate, cfg.FilterTaps, cfg.VolumeScale, cfg.DCBlockerPole)
	pcm := pipeline.Process(amp.Samples())

	reader, writer := io.Pipe()
	player := ctx.NewPlayer(reader)
	defer player.Close()

	go player.Play()

	fmt.Println("Playing audified amplitude...")
	for _, sample := range pcm {
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(sample))
		_, _ = writer.Write(buf[:])
	}
	writer.Close()

	// Give the player time to drain its buffer before exiting.
	time.Sleep(time.Duration(len(pcm)/cfg.PlaybackRate+1) * time.Second)
}
