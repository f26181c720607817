package synth

// Engine mixes the three channels into mono float output and tees
// every post-clip sample into the capture buffer. Fill is the audio
// callback body and is the only code that runs on the audio thread.
type Engine struct {
	channels [NumChannels]*Channel
	capture  *Capture
}

// NewEngine returns an engine with all three channels silent and an
// empty capture buffer.
func NewEngine() *Engine {
	e := &Engine{capture: &Capture{}}
	for id := Pulse1; id < NumChannels; id++ {
		e.channels[id] = newChannel(id)
	}
	return e
}

// Channel returns the channel with the given id.
func (e *Engine) Channel(id ChannelID) *Channel {
	return e.channels[id]
}

// Capture returns the engine's capture buffer.
func (e *Engine) Capture() *Capture {
	return e.capture
}

// Silence turns every channel off.
func (e *Engine) Silence() {
	for _, c := range e.channels {
		c.NoteOff()
	}
}

// Fill produces len(out) frames of output. The buffer is zeroed,
// each active channel adds its block under its own lock, the mix is
// hard-clipped to [-1, 1] and appended to the capture buffer. It
// never fails; the device keeps streaming unconditionally.
func (e *Engine) Fill(out []float32) {
	for i := range out {
		out[i] = 0
	}

	for _, c := range e.channels {
		c.mu.Lock()
		c.mix(out)
		c.mu.Unlock()
	}

	for i, s := range out {
		if s > 1 {
			out[i] = 1
		} else if s < -1 {
			out[i] = -1
		}
	}

	e.capture.append(out)
}
