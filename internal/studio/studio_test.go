package studio

import (
	"testing"

	"github.com/dmgsound/composer/internal/layout"
	"github.com/dmgsound/composer/internal/notes"
	"github.com/dmgsound/composer/internal/score"
	"github.com/dmgsound/composer/internal/sequencer"
	"github.com/dmgsound/composer/internal/synth"
	"github.com/dmgsound/composer/pkg/display/event"
)

func keyDown(s *Session, k event.Key) {
	s.HandleEvent(event.Event{Type: event.KeyDown, Key: k})
}

func keyUp(s *Session, k event.Key) {
	s.HandleEvent(event.Event{Type: event.KeyUp, Key: k})
}

func click(s *Session, x, y int, b event.Button) {
	s.HandleEvent(event.Event{Type: event.MouseDown, X: x, Y: y, Button: b})
}

func TestNoteKeyLivePlay(t *testing.T) {
	s := New()
	ch := s.Engine().Channel(synth.Pulse1)

	keyDown(s, "a")
	if !ch.Active() || ch.Frequency() != notes.C4 {
		t.Fatalf("pulse1 = (%t, %v), want (true, %v)", ch.Active(), ch.Frequency(), notes.C4)
	}

	v := s.View()
	if !v.Pending || v.PendingChannel != synth.Pulse1 || v.PendingPosition != 10 {
		t.Errorf("pending = (%t, %s, %d), want (true, pulse1, 10)", v.Pending, v.PendingChannel, v.PendingPosition)
	}

	keyUp(s, "a")
	if ch.Active() {
		t.Error("pulse1 still active after key-up")
	}
	if !s.View().Pending {
		t.Error("pending cleared by key-up; it must survive for a later staff click")
	}
}

func TestWaveKeySetsNoPending(t *testing.T) {
	s := New()
	keyDown(s, "1")

	ch := s.Engine().Channel(synth.Wave)
	if !ch.Active() || ch.Frequency() != notes.C3 {
		t.Fatalf("wave = (%t, %v), want (true, %v)", ch.Active(), ch.Frequency(), notes.C3)
	}
	if s.View().Pending {
		t.Error("wave key set a pending placement")
	}
	if s.View().Selected != synth.Pulse1 {
		t.Error("wave key changed the selected channel")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	s := New()
	keyDown(s, "w")
	keyUp(s, "w")

	for id := synth.Pulse1; id < synth.NumChannels; id++ {
		if s.Engine().Channel(id).Active() {
			t.Errorf("channel %s activated by an unbound key", id)
		}
	}
}

func TestTabCyclesAllThreeChannels(t *testing.T) {
	s := New()
	want := []synth.ChannelID{synth.Pulse2, synth.Wave, synth.Pulse1}
	for _, w := range want {
		keyDown(s, "tab")
		if got := s.View().Selected; got != w {
			t.Fatalf("selected = %s, want %s", got, w)
		}
	}
}

func TestChannelBadgeClickCyclesLikeTab(t *testing.T) {
	s := New()
	click(s, layout.ChannelBadge.X+5, layout.ChannelBadge.Y+5, event.ButtonLeft)
	if got := s.View().Selected; got != synth.Pulse2 {
		t.Errorf("selected = %s, want pulse2", got)
	}
}

func TestDurationToggle(t *testing.T) {
	s := New()
	if s.View().Duration != score.Eighth {
		t.Fatal("default duration is not eighth")
	}
	keyDown(s, "n")
	if s.View().Duration != score.Quarter {
		t.Error("n did not toggle to quarter")
	}
	keyDown(s, "n")
	if s.View().Duration != score.Eighth {
		t.Error("n did not toggle back to eighth")
	}
}

func TestPlaceNoteViaStaffClick(t *testing.T) {
	s := New()
	keyDown(s, "a")
	keyUp(s, "a")

	x := layout.StaffX + 100
	click(s, x, layout.StaffCenterY, event.ButtonLeft)

	snap := s.Score().Snapshot()
	if len(snap) != 1 {
		t.Fatalf("%d notes placed, want 1", len(snap))
	}
	n := snap[0]
	if n.T != 100 || n.Frequency != notes.C4 || n.Channel != synth.Pulse1 {
		t.Errorf("placed %+v, want t=100 C4 on pulse1", n)
	}
	if s.View().Pending {
		t.Error("pending not cleared by a successful placement")
	}

	// a second click without a new key press places nothing
	click(s, x+200, layout.StaffCenterY, event.ButtonLeft)
	if s.Score().Len() != 1 {
		t.Error("placement without a pending pitch")
	}
}

func TestScrollShiftsPlacement(t *testing.T) {
	s := New()
	click(s, layout.ScrollRight.X+5, layout.ScrollRight.Y+5, event.ButtonLeft)
	if got := s.View().Scroll; got != layout.ScrollStep {
		t.Fatalf("scroll = %d, want %d", got, layout.ScrollStep)
	}

	keyDown(s, "a")
	keyUp(s, "a")
	click(s, layout.StaffX+100, layout.NoteY(10), event.ButtonLeft)
	if n := s.Score().Snapshot()[0]; n.T != 100+layout.ScrollStep {
		t.Errorf("t = %d, want %d", n.T, 100+layout.ScrollStep)
	}

	// scrolling left clamps at zero
	for i := 0; i < 5; i++ {
		click(s, layout.ScrollLeft.X+5, layout.ScrollLeft.Y+5, event.ButtonLeft)
	}
	if got := s.View().Scroll; got != 0 {
		t.Errorf("scroll = %d, want clamp at 0", got)
	}
}

func TestRightClickRemovesNote(t *testing.T) {
	s := New()
	keyDown(s, "a")
	click(s, layout.StaffX+100, layout.StaffCenterY, event.ButtonLeft)
	if s.Score().Len() != 1 {
		t.Fatal("nothing placed")
	}

	click(s, layout.StaffX+100, layout.NoteY(10), event.ButtonRight)
	if s.Score().Len() != 0 {
		t.Error("right-click did not remove the note")
	}
}

func TestPlayButtonAndKeyStartPlayback(t *testing.T) {
	s := New()
	keyDown(s, "a")
	click(s, layout.StaffX+100, layout.StaffCenterY, event.ButtonLeft)

	keyDown(s, "p")
	if !s.Sequencer().Playing() {
		t.Error("p did not start playback")
	}

	s.Sequencer().Stop()
	click(s, layout.PlayButton.X+5, layout.PlayButton.Y+5, event.ButtonLeft)
	if !s.Sequencer().Playing() {
		t.Error("play button did not start playback")
	}
}

func TestClearDuringPlayback(t *testing.T) {
	s := New()
	keyDown(s, "a")
	click(s, layout.StaffX+400, layout.StaffCenterY, event.ButtonLeft)
	keyDown(s, "p")
	if !s.Sequencer().Playing() {
		t.Fatal("playback did not start")
	}

	// clear before the first note triggers; c also sounds E5 while
	// held, so release it before checking for silence
	keyDown(s, "c")
	keyUp(s, "c")

	if !s.Score().Empty() {
		t.Error("score not empty after clear")
	}
	if s.Sequencer().Mode() != sequencer.Idle {
		t.Error("transport not idle after clear")
	}
	for id := synth.Pulse1; id < synth.NumChannels; id++ {
		if s.Engine().Channel(id).Active() {
			t.Errorf("channel %s still active after clear", id)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []event.Key{"q", "escape"} {
		s := New()
		keyDown(s, k)
		if !s.Closed() {
			t.Errorf("%q did not close the session", k)
		}
	}

	s := New()
	s.HandleEvent(event.Event{Type: event.Quit})
	if !s.Closed() {
		t.Error("window close did not close the session")
	}
}

func TestPianoLayout(t *testing.T) {
	s := New()
	v := s.View()

	whites, blacks := 0, 0
	for _, k := range v.Piano {
		if k.Black {
			blacks++
			if k.Key != "" {
				t.Error("black key carries a binding")
			}
		} else {
			whites++
			if k.Frequency <= 0 {
				t.Errorf("white key %q has no frequency", k.Key)
			}
		}
	}
	if whites != 21 || blacks != 15 {
		t.Errorf("piano has %d white / %d black keys, want 21 / 15", whites, blacks)
	}

	// held note keys highlight their piano key
	keyDown(s, "a")
	for _, k := range s.View().Piano {
		if k.Key == "a" && !k.Active {
			t.Error("held key not marked active")
		}
	}
}
