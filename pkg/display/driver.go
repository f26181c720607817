// Package display defines the driver interface for the composer's
// presentation layer and a registry of installed drivers. Drivers
// register themselves from their init function, so a build includes
// exactly the drivers it imports.
package display

import "github.com/dmgsound/composer/internal/studio"

// Driver is the interface that wraps a presentation layer: it owns
// the window, the renderer and the input event polling, and runs the
// UI loop against a session.
type Driver interface {
	// Start acquires the window and renderer, then runs the UI loop
	// until the session is closed. It releases its resources before
	// returning, in reverse acquisition order.
	Start(s *studio.Session) error
}

// InstalledDriver is a driver that has been installed under a name.
type InstalledDriver struct {
	Name string
	Driver
}

// InstalledDrivers is the list of all installed drivers. It is
// exported so that the main program can refuse to start when a build
// includes none. Drivers call Install in their init function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, the first
// installed driver for "auto", or nil when no such driver exists.
func GetDriver(name string) Driver {
	if name == "auto" && len(InstalledDrivers) > 0 {
		return InstalledDrivers[0]
	}
	for _, d := range InstalledDrivers {
		if d.Name == name {
			return d.Driver
		}
	}
	return nil
}

// Install registers a display driver under the given name.
func Install(name string, driver Driver) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:   name,
		Driver: driver,
	})
}
