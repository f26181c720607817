package synth

import "sync"

// ChannelID identifies one of the three voices.
type ChannelID int

const (
	// Pulse1 is the first square-wave voice (C4 octave on the keyboard).
	Pulse1 ChannelID = iota
	// Pulse2 is the second square-wave voice (C5 octave).
	Pulse2
	// Wave is the 16-step wavetable voice (C3 octave).
	Wave

	// NumChannels is the number of voices.
	NumChannels
)

func (id ChannelID) String() string {
	switch id {
	case Pulse1:
		return "pulse1"
	case Pulse2:
		return "pulse2"
	case Wave:
		return "wave"
	}
	return "unknown"
}

// Next returns the channel after id, cycling pulse1 -> pulse2 -> wave -> pulse1.
func (id ChannelID) Next() ChannelID {
	return (id + 1) % NumChannels
}

// Channel is the mutable state of one voice. The UI thread writes
// active and frequency, the audio thread reads them and advances
// phase; the mutex covers exactly that triple and is only ever held
// for a bounded amount of work.
type Channel struct {
	id ChannelID

	mu        sync.Mutex
	active    bool
	frequency float64
	phase     float64

	// wave channel only: 16 samples unpacked from 4-bit PCM
	table [16]float64
}

func newChannel(id ChannelID) *Channel {
	c := &Channel{id: id}
	if id == Wave {
		for i, l := range defaultWaveRAM {
			c.table[i] = unpackSample(l)
		}
	}
	return c
}

// ID returns the channel's identity.
func (c *Channel) ID() ChannelID { return c.id }

// NoteOn makes the channel sound at the given frequency from the
// next callback boundary onwards. The phase accumulator is left
// untouched so that pitch changes are continuous.
func (c *Channel) NoteOn(frequency float64) {
	c.mu.Lock()
	c.active = true
	c.frequency = frequency
	c.mu.Unlock()
}

// NoteOff silences the channel. Frequency and phase are retained.
func (c *Channel) NoteOff() {
	c.mu.Lock()
	c.active = false
	c.mu.Unlock()
}

// Active reports whether the channel is currently sounding.
func (c *Channel) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Frequency returns the channel's current frequency in Hz.
func (c *Channel) Frequency() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frequency
}

// Phase returns the channel's phase accumulator: radians in [0, 2π)
// for the pulse channels, [0, 1) for the wave channel.
func (c *Channel) Phase() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// SetTable replaces the wave channel's 16-entry table with the given
// 4-bit sample levels (0..15). It is a no-op on the pulse channels.
func (c *Channel) SetTable(levels [16]uint8) {
	if c.id != Wave {
		return
	}
	c.mu.Lock()
	for i, l := range levels {
		c.table[i] = unpackSample(l)
	}
	c.mu.Unlock()
}
