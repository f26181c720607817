// Package sdl implements the composer's display driver on SDL2: a
// single window, a 2D accelerated renderer and the event poll that
// feeds the session.
package sdl

import (
	"fmt"

	"github.com/dmgsound/composer/internal/layout"
	"github.com/dmgsound/composer/internal/studio"
	"github.com/dmgsound/composer/pkg/display"
	"github.com/dmgsound/composer/pkg/display/event"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	display.Install("sdl", &Driver{})
}

// Driver is the SDL2 display driver.
type Driver struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// keymap translates the SDL keycodes the composer binds into the
// session's opaque key tokens. Unlisted keys are dropped here, which
// is what makes unbound input silent.
var keymap = map[sdl.Keycode]event.Key{
	sdl.K_a: "a", sdl.K_s: "s", sdl.K_d: "d", sdl.K_f: "f",
	sdl.K_g: "g", sdl.K_h: "h", sdl.K_j: "j",
	sdl.K_z: "z", sdl.K_x: "x", sdl.K_c: "c", sdl.K_v: "v",
	sdl.K_b: "b", sdl.K_n: "n", sdl.K_m: "m",
	sdl.K_1: "1", sdl.K_2: "2", sdl.K_3: "3", sdl.K_4: "4",
	sdl.K_5: "5", sdl.K_6: "6", sdl.K_7: "7",
	sdl.K_p: "p", sdl.K_q: "q",
	sdl.K_TAB: "tab", sdl.K_ESCAPE: "escape",
}

// Start opens the window and renderer, runs the poll/update/render
// loop until the session closes, and tears down in reverse order.
func (d *Driver) Start(s *studio.Session) error {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.QuitSubSystem(sdl.INIT_VIDEO)

	window, err := sdl.CreateWindow("Game Boy Composer",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		layout.WindowWidth, layout.WindowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	d.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()
	d.renderer = renderer

	for !s.Closed() {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			d.dispatch(s, ev)
		}

		s.Update()
		d.draw(s.View())
		renderer.Present()

		// rate-limit, not a synchronisation point
		sdl.Delay(10)
	}

	return nil
}

func (d *Driver) dispatch(s *studio.Session, ev sdl.Event) {
	switch t := ev.(type) {
	case *sdl.QuitEvent:
		s.HandleEvent(event.Event{Type: event.Quit})
	case *sdl.KeyboardEvent:
		key, ok := keymap[t.Keysym.Sym]
		if !ok {
			return
		}
		switch t.Type {
		case sdl.KEYDOWN:
			if t.Repeat != 0 {
				return
			}
			s.HandleEvent(event.Event{Type: event.KeyDown, Key: key})
		case sdl.KEYUP:
			s.HandleEvent(event.Event{Type: event.KeyUp, Key: key})
		}
	case *sdl.MouseButtonEvent:
		if t.Type != sdl.MOUSEBUTTONDOWN {
			return
		}
		button := event.ButtonLeft
		if t.Button == sdl.BUTTON_RIGHT {
			button = event.ButtonRight
		} else if t.Button != sdl.BUTTON_LEFT {
			return
		}
		s.HandleEvent(event.Event{Type: event.MouseDown, X: int(t.X), Y: int(t.Y), Button: button})
	}
}
