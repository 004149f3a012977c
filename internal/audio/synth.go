package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Blip synthesizes a short sine tone with a linear decay. It stands in for
// the click and typing sounds when no sample file is configured.
func Blip(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(rate)
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*t) * env
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
