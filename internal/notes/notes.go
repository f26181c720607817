// Package notes holds the fixed keyboard-to-frequency bindings and
// the frequency-to-staff-position table. All three maps are static
// after initialisation.
package notes

import (
	"github.com/dmgsound/composer/internal/synth"
	"github.com/dmgsound/composer/pkg/display/event"
)

// Note frequencies in Hz for the three diatonic octaves.
const (
	C3 = 130.81
	D3 = 146.83
	E3 = 164.81
	F3 = 174.61
	G3 = 196.00
	A3 = 220.00
	B3 = 246.94

	C4 = 261.63
	D4 = 293.66
	E4 = 329.63
	F4 = 349.23
	G4 = 392.00
	A4 = 440.00
	B4 = 493.88

	C5 = 523.25
	D5 = 587.33
	E5 = 659.26
	F5 = 698.46
	G5 = 783.99
	A5 = 880.00
	B5 = 987.77
)

var pulse1Keys = map[event.Key]float64{
	"a": C4,
	"s": D4,
	"d": E4,
	"f": F4,
	"g": G4,
	"h": A4,
	"j": B4,
}

var pulse2Keys = map[event.Key]float64{
	"z": C5,
	"x": D5,
	"c": E5,
	"v": F5,
	"b": G5,
	"n": A5,
	"m": B5,
}

var waveKeys = map[event.Key]float64{
	"1": C3,
	"2": D3,
	"3": E3,
	"4": F3,
	"5": G3,
	"6": A3,
	"7": B3,
}

// staffPositions maps each playable frequency to its staff-line
// position, centred on F5 = 0 and increasing downward.
var staffPositions = map[float64]int{
	C3: 17,
	D3: 16,
	E3: 15,
	F3: 14,
	G3: 13,
	A3: 12,
	B3: 11,
	C4: 10,
	D4: 9,
	E4: 8,
	F4: 7,
	G4: 6,
	A4: 5,
	B4: 4,
	C5: 3,
	D5: 2,
	E5: 1,
	F5: 0,
	G5: -1,
	A5: -2,
	B5: -3,
}

// KeyMap returns the key-to-frequency map for the given channel.
func KeyMap(id synth.ChannelID) map[event.Key]float64 {
	switch id {
	case synth.Pulse1:
		return pulse1Keys
	case synth.Pulse2:
		return pulse2Keys
	default:
		return waveKeys
	}
}

// Lookup searches all three maps for the given key and returns the
// channel it belongs to and its frequency.
func Lookup(k event.Key) (synth.ChannelID, float64, bool) {
	if f, ok := pulse1Keys[k]; ok {
		return synth.Pulse1, f, true
	}
	if f, ok := pulse2Keys[k]; ok {
		return synth.Pulse2, f, true
	}
	if f, ok := waveKeys[k]; ok {
		return synth.Wave, f, true
	}
	return 0, 0, false
}

// StaffPosition returns the staff-line position for a frequency.
func StaffPosition(frequency float64) (int, bool) {
	p, ok := staffPositions[frequency]
	return p, ok
}

var names = map[float64]string{
	C3: "C3", D3: "D3", E3: "E3", F3: "F3", G3: "G3", A3: "A3", B3: "B3",
	C4: "C4", D4: "D4", E4: "E4", F4: "F4", G4: "G4", A4: "A4", B4: "B4",
	C5: "C5", D5: "D5", E5: "E5", F5: "F5", G5: "G5", A5: "A5", B5: "B5",
}

// Name returns the scientific pitch name of a playable frequency, or
// "?" for anything else.
func Name(frequency float64) string {
	if n, ok := names[frequency]; ok {
		return n
	}
	return "?"
}
