// Package studio wires the synthesis engine, the score and the
// sequencer into one interactive session, and routes input events
// from the display driver into them. Apart from the channel states
// it touches through the engine, everything here belongs to the UI
// thread.
package studio

import (
	"time"

	"github.com/dmgsound/composer/internal/score"
	"github.com/dmgsound/composer/internal/sequencer"
	"github.com/dmgsound/composer/internal/synth"
	"github.com/dmgsound/composer/pkg/display/event"
	"github.com/dmgsound/composer/pkg/log"
)

// Session is one composer session, from startup to the capture flush.
type Session struct {
	logger log.Logger
	engine *synth.Engine
	score  *score.Score
	seq    *sequencer.Sequencer

	// UI state, owned by the UI thread
	selected    synth.ChannelID
	duration    score.Duration
	pendingFreq float64
	hasPending  bool
	scroll      int
	held        map[event.Key]bool

	closed   bool
	lastTick time.Time
	piano    []PianoKey
}

// Opt is a session option.
type Opt func(s *Session)

// WithLogger sets the session's logger.
func WithLogger(l log.Logger) Opt {
	return func(s *Session) {
		s.logger = l
	}
}

// WithEngine replaces the session's engine. Used by tests to inspect
// the engine the session drives.
func WithEngine(e *synth.Engine) Opt {
	return func(s *Session) {
		s.engine = e
	}
}

// New creates a session with a fresh engine, empty score and idle
// transport.
func New(opts ...Opt) *Session {
	s := &Session{
		logger:   log.NewNullLogger(),
		engine:   synth.NewEngine(),
		score:    score.New(),
		selected: synth.Pulse1,
		duration: score.Eighth,
		held:     make(map[event.Key]bool),
		piano:    buildPianoKeys(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seq = sequencer.New(s.engine, s.score)
	return s
}

// Engine returns the session's synthesis engine. Its Fill method is
// the audio device's pull source.
func (s *Session) Engine() *synth.Engine { return s.engine }

// Score returns the session's composition.
func (s *Session) Score() *score.Score { return s.score }

// Sequencer returns the session's transport.
func (s *Session) Sequencer() *sequencer.Sequencer { return s.seq }

// Closed reports whether the user has requested quit.
func (s *Session) Closed() bool { return s.closed }

// Close marks the session as done. The driver loop observes this at
// the top of its next iteration.
func (s *Session) Close() {
	s.closed = true
}

// Update drives the sequencer tick at its soft 50 ms period. The
// driver calls it once per poll/render iteration; calls between
// ticks are cheap no-ops.
func (s *Session) Update() {
	now := time.Now()
	if now.Sub(s.lastTick) < sequencer.TickPeriod {
		return
	}
	s.lastTick = now
	s.seq.Tick()
}

func (s *Session) play() {
	if s.score.Empty() {
		return
	}
	s.seq.Start(s.scroll)
	s.logger.Debugf("playback started at offset %d", s.scroll)
}

func (s *Session) clear() {
	s.seq.Stop()
	s.score.Clear()
	s.logger.Debugf("score cleared")
}

func (s *Session) cycleChannel() {
	s.selected = s.selected.Next()
}
