package synth

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/arl/blip/wave"
)

// Capture is the append-only log of every mixed output sample for
// the session. It is written from the audio callback and drained
// exactly once, after the stream has stopped.
type Capture struct {
	samples []float32
}

func (c *Capture) append(block []float32) {
	c.samples = append(c.samples, block...)
}

// Len returns the number of captured samples.
func (c *Capture) Len() int { return len(c.samples) }

// Empty reports whether nothing was captured.
func (c *Capture) Empty() bool { return len(c.samples) == 0 }

// Samples returns a copy of the captured samples.
func (c *Capture) Samples() []float32 {
	out := make([]float32, len(c.samples))
	copy(out, c.samples)
	return out
}

// quantize converts a float sample to 16-bit PCM, clipping to
// [-1, 1] first.
func quantize(s float32) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(math.Round(float64(s) * 32767))
}

// the wave writer encodes at most 2048 samples per call
const wavChunk = 2048

// WriteWAV writes the captured samples to w as a canonical mono
// 16-bit PCM RIFF/WAVE stream.
func (c *Capture) WriteWAV(w io.Writer) error {
	ww := wave.NewWriter(w, SampleRate)
	buf := make([]int16, wavChunk)
	for off := 0; off < len(c.samples); off += wavChunk {
		end := off + wavChunk
		if end > len(c.samples) {
			end = len(c.samples)
		}
		pcm := buf[:end-off]
		for i, s := range c.samples[off:end] {
			pcm[i] = quantize(s)
		}
		if _, err := ww.Write(pcm); err != nil {
			return err
		}
	}
	return ww.Close()
}

// Save writes the captured samples to a WAV file at path.
func (c *Capture) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.WriteWAV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
