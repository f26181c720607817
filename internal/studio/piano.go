package studio

import (
	"github.com/dmgsound/composer/internal/layout"
	"github.com/dmgsound/composer/internal/notes"
	"github.com/dmgsound/composer/internal/synth"
	"github.com/dmgsound/composer/pkg/display/event"
)

// PianoKey is one on-screen key. Black keys are decorative: they
// carry no binding and never activate.
type PianoKey struct {
	Rect      layout.Rect
	Key       event.Key
	Channel   synth.ChannelID
	Frequency float64
	Black     bool
}

// one diatonic octave of white keys, in keyboard order per channel
var octaves = []struct {
	channel synth.ChannelID
	keys    []event.Key
}{
	{synth.Wave, []event.Key{"1", "2", "3", "4", "5", "6", "7"}},
	{synth.Pulse1, []event.Key{"a", "s", "d", "f", "g", "h", "j"}},
	{synth.Pulse2, []event.Key{"z", "x", "c", "v", "b", "n", "m"}},
}

// black key slots within one octave, indexed by the white key on
// whose right edge the black key sits (no black key after E and B)
var blackSlots = []int{0, 1, 3, 4, 5}

// buildPianoKeys lays out the three octaves left to right, lowest
// pitch first, with the decorative black keys on top.
func buildPianoKeys() []PianoKey {
	var keys []PianoKey

	x := layout.PianoX
	for _, oct := range octaves {
		freqs := notes.KeyMap(oct.channel)
		for _, k := range oct.keys {
			keys = append(keys, PianoKey{
				Rect:      layout.Rect{X: x, Y: layout.PianoY, W: layout.WhiteKeyWidth, H: layout.WhiteKeyHeight},
				Key:       k,
				Channel:   oct.channel,
				Frequency: freqs[k],
			})
			x += layout.WhiteKeyWidth
		}
	}

	for i, oct := range octaves {
		octX := layout.PianoX + i*7*layout.WhiteKeyWidth
		for _, slot := range blackSlots {
			bx := octX + (slot+1)*layout.WhiteKeyWidth - layout.BlackKeyWidth/2
			keys = append(keys, PianoKey{
				Rect:    layout.Rect{X: bx, Y: layout.PianoY, W: layout.BlackKeyWidth, H: layout.BlackKeyHeight},
				Channel: oct.channel,
				Black:   true,
			})
		}
	}

	return keys
}
