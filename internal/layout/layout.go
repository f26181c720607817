// Package layout fixes the pixel geometry of the composer window.
// Both the input hit-testing and the renderer work from these
// values, so the two can never disagree about where a control is.
package layout

const (
	WindowWidth  = 1000
	WindowHeight = 600

	WhiteKeyWidth  = 40
	WhiteKeyHeight = 150
	BlackKeyWidth  = 24
	BlackKeyHeight = 100
	PianoX         = 50
	PianoY         = 50

	StaffX      = 50
	StaffY      = 250
	StaffWidth  = 900
	StaffHeight = 200
	LineSpacing = 20
	NoteRadius  = 10

	StaffCenterY = StaffY + StaffHeight/2

	// ScrollStep is how far one click of a scroll button moves the staff.
	ScrollStep = 50
)

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

var (
	Staff        = Rect{StaffX, StaffY, StaffWidth, StaffHeight}
	PlayButton   = Rect{StaffX, StaffY + StaffHeight + 10, 100, 30}
	ClearButton  = Rect{StaffX + 120, StaffY + StaffHeight + 10, 100, 30}
	ScrollLeft   = Rect{StaffX - 30, StaffCenterY - 15, 20, 30}
	ScrollRight  = Rect{StaffX + StaffWidth + 10, StaffCenterY - 15, 20, 30}
	ChannelBadge = Rect{WindowWidth - 150, 20, 130, 30}
	HelpBar      = Rect{StaffX, WindowHeight - 60, WindowWidth - 100, 50}
)

// NoteY returns the vertical centre of a note head at the given
// staff position (F5 = 0, increasing downward).
func NoteY(position int) int {
	return StaffCenterY - position*LineSpacing/2
}
