package audio

import (
	"sync"
	"time"
)

// headlessDevice discards its output but still pulls from the source
// at wall-clock rate, one BufferSize block per period, so a session on
// a machine without sound hardware records the same capture it would
// with a real device.
type headlessDevice struct {
	src  Source
	done chan struct{}
	wg   sync.WaitGroup
}

func openHeadless(src Source) (Device, error) {
	d := &headlessDevice{src: src, done: make(chan struct{})}
	d.wg.Add(1)
	go d.run()
	return d, nil
}

func (d *headlessDevice) run() {
	defer d.wg.Done()

	t := time.NewTicker(time.Second * BufferSize / SampleRate)
	defer t.Stop()

	buf := make([]float32, BufferSize)
	for {
		select {
		case <-d.done:
			return
		case <-t.C:
			d.src.Fill(buf)
		}
	}
}

func (d *headlessDevice) Close() error {
	close(d.done)
	d.wg.Wait()
	return nil
}
