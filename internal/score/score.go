// Package score holds the composition: the unordered collection of
// notes the user has placed on the staff. It is owned by the UI
// thread and never shared, so it needs no locking.
package score

import (
	"sort"

	"github.com/dmgsound/composer/internal/layout"
	"github.com/dmgsound/composer/internal/notes"
	"github.com/dmgsound/composer/internal/synth"
)

// Duration classifies how long a placed note sounds during playback.
type Duration int

const (
	// Eighth is the short duration class.
	Eighth Duration = iota
	// Quarter is the long duration class, twice an Eighth.
	Quarter
)

func (d Duration) String() string {
	if d == Quarter {
		return "quarter"
	}
	return "eighth"
}

// Px returns the length of the duration on the staff's virtual time
// axis, in pixels. A Quarter is exactly twice an Eighth, which is
// what makes the "long lasts at least 2x short" property hold.
func (d Duration) Px() int {
	if d == Quarter {
		return 40
	}
	return 20
}

// Toggle returns the other duration class.
func (d Duration) Toggle() Duration {
	if d == Quarter {
		return Eighth
	}
	return Quarter
}

// Note is one placed note.
type Note struct {
	Frequency float64
	Position  int // staff line, derived from Frequency
	T         int // horizontal time coordinate in virtual pixels
	Channel   synth.ChannelID
	Duration  Duration
	Playing   bool // set while the sequencer is sounding this note
}

// Score is a growable, unordered collection of placed notes.
type Score struct {
	notes []Note
}

// New returns an empty score.
func New() *Score {
	return &Score{}
}

// Place appends a note at time t. It is rejected (returning false)
// when the frequency has no staff position.
func (s *Score) Place(t int, frequency float64, channel synth.ChannelID, d Duration) bool {
	pos, ok := notes.StaffPosition(frequency)
	if !ok {
		return false
	}
	s.notes = append(s.notes, Note{
		Frequency: frequency,
		Position:  pos,
		T:         t,
		Channel:   channel,
		Duration:  d,
	})
	return true
}

// RemoveNear removes at most one note whose head overlaps the point
// (t, y), where t is on the virtual time axis and y is a window
// y-coordinate. It reports whether a note was removed.
func (s *Score) RemoveNear(t, y int) bool {
	for i, n := range s.notes {
		ny := layout.NoteY(n.Position)
		if abs(n.T-t) < layout.NoteRadius*2 && abs(y-ny) < layout.NoteRadius*2 {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the score.
func (s *Score) Clear() {
	s.notes = s.notes[:0]
}

// Len returns the number of placed notes.
func (s *Score) Len() int { return len(s.notes) }

// Empty reports whether no notes are placed.
func (s *Score) Empty() bool { return len(s.notes) == 0 }

// Snapshot returns a read-only copy of the notes for renderers.
func (s *Score) Snapshot() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Sorted returns a copy of the notes in ascending T order.
func (s *Score) Sorted() []Note {
	out := s.Snapshot()
	sort.SliceStable(out, func(i, j int) bool { return out[i].T < out[j].T })
	return out
}

// MaxT returns the largest time coordinate of any note, or 0 when
// the score is empty.
func (s *Score) MaxT() int {
	max := 0
	for _, n := range s.notes {
		if n.T > max {
			max = n.T
		}
	}
	return max
}

// SetPlaying updates the transient playing flag of the note matching
// n by time, channel and pitch.
func (s *Score) SetPlaying(n Note, playing bool) {
	for i := range s.notes {
		if s.notes[i].T == n.T && s.notes[i].Channel == n.Channel && s.notes[i].Frequency == n.Frequency {
			s.notes[i].Playing = playing
			return
		}
	}
}

// ClearPlaying resets every note's playing flag.
func (s *Score) ClearPlaying() {
	for i := range s.notes {
		s.notes[i].Playing = false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
