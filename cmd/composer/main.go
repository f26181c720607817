package main

import (
	"flag"
	"os"

	"github.com/dmgsound/composer/internal/studio"
	"github.com/dmgsound/composer/pkg/audio"
	"github.com/dmgsound/composer/pkg/display"
	_ "github.com/dmgsound/composer/pkg/display/sdl"
	"github.com/dmgsound/composer/pkg/log"
)

func main() {
	var logger = log.New()

	driverName := flag.String("driver", "auto", "The display driver to use")
	audioName := flag.String("audio", "sdl", "The audio device to use. Can be sdl, oto or none")
	output := flag.String("output", "gameboy_audio.wav", "Where to write the captured session audio")
	noCapture := flag.Bool("no-capture", false, "Discard session audio instead of writing a WAV file")
	flag.Parse()

	if len(display.InstalledDrivers) == 0 {
		logger.Fatal("No display drivers installed. Please compile with at least one display driver")
	}

	session := studio.New(studio.WithLogger(logger))

	// the stream starts pulling from the engine immediately
	device, err := audio.Open(*audioName, session.Engine())
	if err != nil {
		logger.Errorf("unable to open audio device: %s", err)
		os.Exit(1)
	}

	driver := display.GetDriver(*driverName)
	if driver == nil {
		device.Close()
		logger.Fatal("invalid display driver")
	}

	banner(logger)

	if err := driver.Start(session); err != nil {
		device.Close()
		logger.Errorf("display driver failed: %s", err)
		os.Exit(1)
	}

	// stop the stream (joining the audio thread) before draining the capture
	if err := device.Close(); err != nil {
		logger.Errorf("error closing audio device: %s", err)
	}

	if *noCapture {
		return
	}
	capture := session.Engine().Capture()
	if capture.Empty() {
		logger.Infof("no audio data recorded")
		return
	}
	if err := capture.Save(*output); err != nil {
		logger.Errorf("failed to save session audio: %s", err)
		return
	}
	logger.Infof("audio saved to %s (%d samples)", *output, capture.Len())
}

func banner(logger log.Logger) {
	logger.Infof("Game Boy Composer")
	logger.Infof("Pulse 1 keys: A-S-D-F-G-H-J (C4-B4)")
	logger.Infof("Pulse 2 keys: Z-X-C-V-B-N-M (C5-B5)")
	logger.Infof("Wave keys:    1-2-3-4-5-6-7 (C3-B3)")
	logger.Infof("Press a note key, then click on the staff to place it")
	logger.Infof("Right-click removes a note")
	logger.Infof("P plays the composition, C clears the staff")
	logger.Infof("N toggles note duration, TAB cycles the channel")
	logger.Infof("Q or ESC quits and saves the session audio")
}
