package studio

import (
	"github.com/dmgsound/composer/internal/layout"
	"github.com/dmgsound/composer/internal/notes"
	"github.com/dmgsound/composer/internal/synth"
	"github.com/dmgsound/composer/pkg/display/event"
)

// HandleEvent routes one input event into the session. Unbound keys
// and clicks that hit nothing are silently ignored.
func (s *Session) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.Quit:
		s.closed = true
	case event.KeyDown:
		s.keyDown(ev.Key)
	case event.KeyUp:
		s.keyUp(ev.Key)
	case event.MouseDown:
		s.mouseDown(ev.X, ev.Y, ev.Button)
	}
}

func (s *Session) keyDown(k event.Key) {
	switch k {
	case "q", "escape":
		s.closed = true
	case "p":
		s.play()
	case "c":
		s.clear()
	case "n":
		s.duration = s.duration.Toggle()
	case "tab":
		s.cycleChannel()
	}

	// c and n are transport keys and pulse2 notes at once; both
	// effects fire on the same press
	if ch, f, ok := notes.Lookup(k); ok {
		s.engine.Channel(ch).NoteOn(f)
		s.held[k] = true
		if ch != synth.Wave {
			s.pendingFreq = f
			s.hasPending = true
			s.selected = ch
		}
	}
}

func (s *Session) keyUp(k event.Key) {
	ch, _, ok := notes.Lookup(k)
	if !ok {
		return
	}
	s.engine.Channel(ch).NoteOff()
	delete(s.held, k)
	// pendingFreq survives key-up so a release-then-click still places
}

func (s *Session) mouseDown(x, y int, button event.Button) {
	if layout.Staff.Contains(x, y) {
		t := x - layout.StaffX + s.scroll
		if button == event.ButtonRight {
			s.score.RemoveNear(t, y)
			return
		}
		if s.hasPending && s.pendingFreq > 0 {
			if s.score.Place(t, s.pendingFreq, s.selected, s.duration) {
				s.hasPending = false
				s.logger.Debugf("placed %s on %s at t=%d", notes.Name(s.pendingFreq), s.selected, t)
			}
		}
		return
	}
	if button != event.ButtonLeft {
		return
	}

	switch {
	case layout.PlayButton.Contains(x, y):
		s.play()
	case layout.ClearButton.Contains(x, y):
		s.clear()
	case layout.ScrollLeft.Contains(x, y):
		s.scroll -= layout.ScrollStep
		if s.scroll < 0 {
			s.scroll = 0
		}
	case layout.ScrollRight.Contains(x, y):
		s.scroll += layout.ScrollStep
	case layout.ChannelBadge.Contains(x, y):
		s.cycleChannel()
	}
}
