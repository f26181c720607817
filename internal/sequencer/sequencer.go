// Package sequencer plays a score back by walking a virtual playhead
// along the staff's time axis and driving the channel states. It runs
// entirely on the UI thread; the only cross-thread effect it has is
// through the channels' own locks.
package sequencer

import (
	"time"

	"github.com/dmgsound/composer/internal/score"
	"github.com/dmgsound/composer/internal/synth"
)

const (
	// TickPeriod is the soft period of the UI-thread tick driving
	// the playhead.
	TickPeriod = 50 * time.Millisecond
	// AdvanceStep is how many virtual pixels the playhead moves per
	// tick: 40 px/s at the 50 ms tick.
	AdvanceStep = 2
	// TriggerWindow is the pixel radius around the playhead within
	// which a note is considered reached.
	TriggerWindow = 5
	// Tail is the padding after the last note during which playback
	// keeps running before going idle.
	Tail = 40
)

// Mode is the transport state.
type Mode int

const (
	// Idle means no playback is running.
	Idle Mode = iota
	// Playing means the playhead is advancing.
	Playing
)

// hold tracks the note currently sounding on one channel and when,
// on the time axis, it should be released.
type hold struct {
	active bool
	endT   int
	note   score.Note
}

// Sequencer walks a score and fires note-on/off events into the
// engine's channel states.
type Sequencer struct {
	engine *synth.Engine
	score  *score.Score

	mode     Mode
	playhead int
	stopT    int
	pending  []score.Note
	holds    [synth.NumChannels]hold
}

// New returns an idle sequencer over the given engine and score.
func New(engine *synth.Engine, sc *score.Score) *Sequencer {
	return &Sequencer{engine: engine, score: sc}
}

// Mode returns the transport mode.
func (s *Sequencer) Mode() Mode { return s.mode }

// Playing reports whether playback is running.
func (s *Sequencer) Playing() bool { return s.mode == Playing }

// Playhead returns the playhead position on the virtual time axis.
func (s *Sequencer) Playhead() int { return s.playhead }

// Start begins playback from the given scroll offset. Starting from
// an empty score is a no-op and leaves the transport idle.
func (s *Sequencer) Start(scrollOffset int) {
	if s.score.Empty() {
		return
	}
	s.score.ClearPlaying()
	s.pending = s.score.Sorted()
	s.holds = [synth.NumChannels]hold{}
	s.playhead = scrollOffset
	s.stopT = s.score.MaxT() + Tail
	s.mode = Playing
}

// Stop halts playback, silences every channel and clears the queue.
func (s *Sequencer) Stop() {
	s.mode = Idle
	s.pending = nil
	s.holds = [synth.NumChannels]hold{}
	s.engine.Silence()
	s.score.ClearPlaying()
}

// Tick advances playback by one step: releases notes whose duration
// has elapsed, triggers notes the playhead has reached, and moves the
// playhead. It is a no-op while idle.
func (s *Sequencer) Tick() {
	if s.mode != Playing {
		return
	}
	if s.playhead > s.stopT {
		s.Stop()
		return
	}

	// release holds that have run their duration
	for ch := range s.holds {
		h := &s.holds[ch]
		if h.active && s.playhead >= h.endT {
			s.engine.Channel(synth.ChannelID(ch)).NoteOff()
			s.score.SetPlaying(h.note, false)
			h.active = false
		}
	}

	// trigger notes within the window; notes already behind the
	// playhead at start are skipped, not sounded late
	for len(s.pending) > 0 && s.pending[0].T < s.playhead+TriggerWindow {
		n := s.pending[0]
		s.pending = s.pending[1:]
		if n.T <= s.playhead-TriggerWindow {
			continue
		}
		s.trigger(n)
	}

	s.playhead += AdvanceStep
}

func (s *Sequencer) trigger(n score.Note) {
	h := &s.holds[n.Channel]
	if h.active {
		// a new note on the same channel barges in
		s.score.SetPlaying(h.note, false)
	}
	s.engine.Channel(n.Channel).NoteOn(n.Frequency)
	s.score.SetPlaying(n, true)
	// durations are measured from the trigger point, so a note held
	// for its full length sounds for exactly Px()/AdvanceStep ticks
	*h = hold{active: true, endT: s.playhead + n.Duration.Px(), note: n}
}
