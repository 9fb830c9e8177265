package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const fireDuration = 120 * time.Millisecond

// newPewGenerator returns a short square-wave sweep from high to low pitch.
func newPewGenerator(sr beep.SampleRate) beep.Streamer {
	total := sr.N(fireDuration)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			progress := float64(pos) / float64(total)
			freq := 1400 - 1000*progress
			phase += freq / float64(sr)
			phase -= math.Floor(phase)

			val := -1.0
			if phase < 0.5 {
				val = 1.0
			}
			amp := 0.12 * math.Max(0, 1-progress)

			samples[i][0] = amp * val
			samples[i][1] = amp * val
			pos++
		}
		return len(samples), true
	})
}

// musicNotes is a minor arpeggio in Hz, one note per step.
var musicNotes = []float64{
	220.00, 261.63, 329.63, 261.63,
	196.00, 246.94, 293.66, 246.94,
	174.61, 220.00, 261.63, 220.00,
	164.81, 207.65, 246.94, 329.63,
}

// newMusicGenerator returns an endless arpeggio over a low drone.
func newMusicGenerator(sr beep.SampleRate) beep.Streamer {
	step := sr.N(200 * time.Millisecond)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			note := musicNotes[(pos/step)%len(musicNotes)]
			inStep := float64(pos%step) / float64(step)

			lead := 0.06 * math.Exp(-inStep*4) * math.Sin(2*math.Pi*note*t)
			drone := 0.03 * math.Sin(2*math.Pi*55*t)

			samples[i][0] = lead + drone
			samples[i][1] = lead + drone
			pos++
		}
		return len(samples), true
	})
}
