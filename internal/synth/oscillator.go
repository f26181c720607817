package synth

import "math"

const (
	// SampleRate is the fixed output sample rate in Hz.
	SampleRate = 44100
	// BufferSize is the number of frames per audio callback.
	BufferSize = 256

	// amplitude of the pulse channels
	amplitude = 0.5
	// the wave channel runs 6 dB quieter than the pulse channels
	waveScale = 0.5

	twoPi = 2 * math.Pi
)

// defaultWaveRAM is a single-cycle sine quantised to 4 bits, in the
// same 0..15 levels the original hardware's wave RAM holds.
var defaultWaveRAM = [16]uint8{
	8, 10, 13, 14, 15, 14, 13, 10,
	8, 5, 2, 1, 0, 1, 2, 5,
}

// unpackSample converts a 4-bit wave RAM level to a float in [-1, 1].
func unpackSample(l uint8) float64 {
	return (float64(l) - 7.5) / 7.5
}

// mix adds one block of samples to out, advancing the phase
// accumulator. Callers must hold c.mu.
func (c *Channel) mix(out []float32) {
	if !c.active || c.frequency <= 0 {
		return
	}
	if c.id == Wave {
		c.mixWave(out)
	} else {
		c.mixPulse(out)
	}
}

// mixPulse generates a 50% duty square wave: +amplitude for the first
// half of each cycle, -amplitude for the second. Phase is radians in
// [0, 2π).
func (c *Channel) mixPulse(out []float32) {
	inc := twoPi * c.frequency / SampleRate
	for i := range out {
		c.phase += inc
		if c.phase >= twoPi {
			c.phase -= twoPi
		}
		if c.phase < math.Pi {
			out[i] += amplitude
		} else {
			out[i] -= amplitude
		}
	}
}

// mixWave steps through the 16-entry table. Phase is normalised to
// [0, 1) over one table cycle.
func (c *Channel) mixWave(out []float32) {
	inc := c.frequency / SampleRate
	for i := range out {
		c.phase += inc
		if c.phase >= 1 {
			c.phase -= 1
		}
		idx := int(c.phase*16) & 15
		out[i] += float32(c.table[idx] * amplitude * waveScale)
	}
}
