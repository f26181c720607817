package sdl

import (
	"github.com/dmgsound/composer/internal/layout"
	"github.com/dmgsound/composer/internal/score"
	"github.com/dmgsound/composer/internal/studio"
	"github.com/dmgsound/composer/internal/synth"
	"github.com/veandco/go-sdl2/sdl"
)

type colour struct{ r, g, b, a uint8 }

var (
	background = colour{240, 240, 240, 255}
	staffPaper = colour{255, 255, 240, 255}
	ink        = colour{0, 0, 0, 255}
	cursorRed  = colour{255, 0, 0, 255}
	ringYellow = colour{255, 255, 0, 255}
	buttonGrey = colour{150, 150, 150, 255}
	playGreen  = colour{100, 200, 100, 255}
	clearRed   = colour{200, 100, 100, 255}
	helpGrey   = colour{250, 250, 250, 255}
	blackKey   = colour{40, 40, 40, 255}
	white      = colour{255, 255, 255, 255}
)

// per-channel colours: note heads and active piano keys
var (
	noteColours = [synth.NumChannels]colour{
		synth.Pulse1: {0, 0, 255, 255},
		synth.Pulse2: {255, 0, 0, 255},
		synth.Wave:   {0, 150, 60, 255},
	}
	activeKeyColours = [synth.NumChannels]colour{
		synth.Pulse1: {200, 200, 255, 255},
		synth.Pulse2: {255, 200, 200, 255},
		synth.Wave:   {200, 255, 210, 255},
	}
	ghostColours = [synth.NumChannels]colour{
		synth.Pulse1: {140, 140, 255, 255},
		synth.Pulse2: {255, 140, 140, 255},
		synth.Wave:   {120, 210, 150, 255},
	}
)

func (d *Driver) set(c colour) {
	d.renderer.SetDrawColor(c.r, c.g, c.b, c.a)
}

func toRect(r layout.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

func (d *Driver) fillRect(r layout.Rect, c colour) {
	d.set(c)
	d.renderer.FillRect(toRect(r))
}

func (d *Driver) outlineRect(r layout.Rect, c colour) {
	d.set(c)
	d.renderer.DrawRect(toRect(r))
}

func (d *Driver) line(x1, y1, x2, y2 int, c colour) {
	d.set(c)
	d.renderer.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2))
}

// fillCircle rasterises a filled circle out of points; the renderer
// has no circle primitive.
func (d *Driver) fillCircle(cx, cy, radius int, c colour) {
	d.set(c)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				d.renderer.DrawPoint(int32(cx+dx), int32(cy+dy))
			}
		}
	}
}

// ring rasterises a circle outline of the given thickness.
func (d *Driver) ring(cx, cy, inner, outer int, c colour) {
	d.set(c)
	for dy := -outer; dy <= outer; dy++ {
		for dx := -outer; dx <= outer; dx++ {
			r2 := dx*dx + dy*dy
			if r2 <= outer*outer && r2 > inner*inner {
				d.renderer.DrawPoint(int32(cx+dx), int32(cy+dy))
			}
		}
	}
}

func (d *Driver) draw(v studio.View) {
	d.set(background)
	d.renderer.Clear()

	d.drawPiano(v)
	d.drawStaff(v)
	d.drawControls(v)
}

func (d *Driver) drawPiano(v studio.View) {
	// white keys first, black keys on top
	for _, k := range v.Piano {
		if k.Black {
			continue
		}
		fill := white
		if k.Active {
			fill = activeKeyColours[k.Channel]
		}
		d.fillRect(k.Rect, fill)
		d.outlineRect(k.Rect, ink)
	}
	for _, k := range v.Piano {
		if k.Black {
			d.fillRect(k.Rect, blackKey)
		}
	}
}

func (d *Driver) drawStaff(v studio.View) {
	d.fillRect(layout.Staff, staffPaper)

	d.set(ink)
	for i := -4; i <= 4; i += 2 {
		y := layout.StaffCenterY + i*layout.LineSpacing/2
		d.renderer.DrawLine(layout.StaffX, int32(y), layout.StaffX+layout.StaffWidth, int32(y))
	}

	if v.Playing {
		x := layout.StaffX + v.Playhead - v.Scroll
		if x >= layout.StaffX && x <= layout.StaffX+layout.StaffWidth {
			d.line(x, layout.StaffY, x, layout.StaffY+layout.StaffHeight, cursorRed)
		}
	}

	for _, n := range v.Notes {
		x := layout.StaffX + n.T - v.Scroll
		if x < layout.StaffX-layout.NoteRadius || x > layout.StaffX+layout.StaffWidth+layout.NoteRadius {
			continue
		}
		y := layout.NoteY(n.Position)
		c := noteColours[n.Channel]

		d.fillCircle(x, y, layout.NoteRadius, c)

		// stem down for high notes, up for low ones; eighths get a flag
		if n.Position >= 0 {
			d.line(x+layout.NoteRadius, y, x+layout.NoteRadius, y+30, c)
			if n.Duration == score.Eighth {
				d.line(x+layout.NoteRadius, y+30, x+layout.NoteRadius+8, y+22, c)
			}
		} else {
			d.line(x-layout.NoteRadius, y, x-layout.NoteRadius, y-30, c)
			if n.Duration == score.Eighth {
				d.line(x-layout.NoteRadius, y-30, x-layout.NoteRadius+8, y-22, c)
			}
		}

		if n.Playing {
			d.ring(x, y, layout.NoteRadius, layout.NoteRadius+2, ringYellow)
		}
	}

	if v.Pending {
		mx, _, _ := sdl.GetMouseState()
		x := int(mx)
		if x < layout.StaffX {
			x = layout.StaffX
		}
		if x > layout.StaffX+layout.StaffWidth {
			x = layout.StaffX + layout.StaffWidth
		}
		d.fillCircle(x, layout.NoteY(v.PendingPosition), layout.NoteRadius, ghostColours[v.PendingChannel])
	}
}

func (d *Driver) drawControls(v studio.View) {
	d.fillRect(layout.PlayButton, playGreen)
	d.outlineRect(layout.PlayButton, ink)
	d.fillRect(layout.ClearButton, clearRed)
	d.outlineRect(layout.ClearButton, ink)

	d.fillRect(layout.ScrollLeft, buttonGrey)
	d.fillRect(layout.ScrollRight, buttonGrey)
	d.outlineRect(layout.ScrollLeft, ink)
	d.outlineRect(layout.ScrollRight, ink)

	d.fillRect(layout.ChannelBadge, activeKeyColours[v.Selected])
	d.outlineRect(layout.ChannelBadge, ink)

	// duration marker inside the badge: filled square for quarter,
	// outline for eighth
	marker := layout.Rect{
		X: layout.ChannelBadge.X + layout.ChannelBadge.W - 24,
		Y: layout.ChannelBadge.Y + 7,
		W: 16, H: 16,
	}
	if v.Duration == score.Quarter {
		d.fillRect(marker, ink)
	} else {
		d.outlineRect(marker, ink)
	}

	d.fillRect(layout.HelpBar, helpGrey)
	d.outlineRect(layout.HelpBar, ink)
}
