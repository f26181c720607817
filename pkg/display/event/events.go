// Package event defines the input event types that a display.Driver
// delivers to the session. This package is separate from the display
// package to avoid circular dependencies.
package event

// Key identifies a keyboard key as an opaque, lower-case token such
// as "a", "1" or "tab". Keys that match no binding are ignored by
// the session.
type Key string

// Button is a mouse button kind.
type Button int

const (
	// ButtonLeft is the left (primary) mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the right (secondary) mouse button.
	ButtonRight
)

// Type defines the various input event types.
type Type int

const (
	// KeyDown is sent when a key is pressed. Key repeats are
	// filtered out by the driver.
	KeyDown Type = iota
	// KeyUp is sent when a key is released.
	KeyUp
	// MouseDown is sent when a mouse button is pressed, with the
	// cursor position in window coordinates.
	MouseDown
	// Quit is sent when the user requests that the application
	// be closed.
	Quit
)

// Event is the data structure that a display.Driver delivers to the
// session for each input event it polls.
type Event struct {
	// Type is the type of event.
	Type Type
	// Key is set for KeyDown and KeyUp events.
	Key Key
	// X, Y are the cursor position for MouseDown events.
	X, Y int
	// Button is the mouse button for MouseDown events.
	Button Button
}
