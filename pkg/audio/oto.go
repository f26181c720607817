package audio

import (
	"time"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// otoDevice adapts a Source to oto's reader-driven player. oto calls
// Read on its own audio goroutine, which plays the role of the
// device callback.
type otoDevice struct {
	ctx    *oto.Context
	player *oto.Player
	src    Source
	buf    []float32 // pre-allocated, the hot path must not allocate
}

func openOto(src Source) (Device, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Second * BufferSize / SampleRate,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	d := &otoDevice{ctx: ctx, src: src, buf: make([]float32, 4096)}
	d.player = ctx.NewPlayer(d)
	d.player.Play()
	return d, nil
}

func (d *otoDevice) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if len(d.buf) < n {
		d.buf = make([]float32, n)
	}
	samples := d.buf[:n]
	d.src.Fill(samples)
	copy(p, unsafe.Slice((*byte)(unsafe.Pointer(&samples[0])), n*4))
	return n * 4, nil
}

func (d *otoDevice) Close() error {
	return d.player.Close()
}
