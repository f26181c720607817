// Package audio opens a mono float32 output device and pulls samples
// from a Source on the device's real-time thread. Two devices are
// available: SDL's callback-mode audio and an oto/v3 player.
package audio

import "fmt"

const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100
	// BufferSize is the device buffer size in frames (~5.8 ms).
	BufferSize = 256
)

// Source produces audio. Fill must write len(out) frames and is
// called from the device's audio thread; it must not block.
type Source interface {
	Fill(out []float32)
}

// Device is an open, streaming audio output.
type Device interface {
	// Close stops the stream (joining the audio thread) and
	// releases the device.
	Close() error
}

// Open opens the named audio device ("sdl", "oto" or "none")
// streaming from src. The stream starts immediately. The "none"
// device is silent but keeps pulling, so captures still record.
func Open(name string, src Source) (Device, error) {
	switch name {
	case "sdl", "auto", "":
		return openSDL(src)
	case "oto":
		return openOto(src)
	case "none":
		return openHeadless(src)
	}
	return nil, fmt.Errorf("unknown audio device %q", name)
}
