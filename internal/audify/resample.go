package audify

import "math"

// Resample changes the sample rate of a signal using a windowed-sinc function.
// It is used on its own when raising the rate; lowering the rate goes through
// the FIRFilter anti-alias path instead.
func Resample(input []float64, ratio float64) []float64 {
	const windowSize = 16 // Number of taps on each side of the sample.

	outputLen := int(float64(len(input)) * ratio)
	if outputLen == 0 {
		return nil
	}
	output := make([]float64, outputLen)
	invRatio := 1.0 / ratio

	for i := range output {
		inPos := float64(i) * invRatio
		centerIndex := int(math.Round(inPos))

		var acc, sumTaps float64
		for j := -windowSize; j < windowSize; j++ {
			inputIndex := centerIndex + j
			if inputIndex < 0 || inputIndex >= len(input) {
				continue
			}

			sincPos := inPos - float64(inputIndex)
			piSincPos := math.Pi * sincPos
			sinc := 1.0
			if piSincPos != 0 {
				sinc = math.Sin(piSincPos) / piSincPos
			}

			window := 0.54 - 0.46*math.Cos(2*math.Pi*float64(j+windowSize)/float64(2*windowSize))
			tap := sinc * window

			acc += input[inputIndex] * tap
			sumTaps += tap
		}
		if sumTaps != 0 {
			output[i] = acc / sumTaps
		}
	}
	return output
}
