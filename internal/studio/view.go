package studio

import (
	"github.com/dmgsound/composer/internal/notes"
	"github.com/dmgsound/composer/internal/score"
	"github.com/dmgsound/composer/internal/synth"
)

// PianoKeyView is a piano key plus its live active flag.
type PianoKeyView struct {
	PianoKey
	Active bool
}

// View is a read-only snapshot of everything the renderer draws.
type View struct {
	Piano    []PianoKeyView
	Notes    []score.Note
	Playing  bool
	Playhead int
	Scroll   int

	Selected synth.ChannelID
	Duration score.Duration

	// ghost note preview while a pitch is pending placement
	Pending         bool
	PendingChannel  synth.ChannelID
	PendingPosition int
}

// View snapshots the session for one frame.
func (s *Session) View() View {
	v := View{
		Notes:    s.score.Snapshot(),
		Playing:  s.seq.Playing(),
		Playhead: s.seq.Playhead(),
		Scroll:   s.scroll,
		Selected: s.selected,
		Duration: s.duration,
	}

	v.Piano = make([]PianoKeyView, len(s.piano))
	for i, k := range s.piano {
		v.Piano[i] = PianoKeyView{PianoKey: k, Active: !k.Black && s.held[k.Key]}
	}

	if s.hasPending {
		if pos, ok := notes.StaffPosition(s.pendingFreq); ok {
			v.Pending = true
			v.PendingChannel = s.selected
			v.PendingPosition = pos
		}
	}

	return v
}
