package audio

// typedef unsigned char Uint8;
// void FillStream(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// source is the active pull source. SDL's callback carries no usable
// userdata across cgo, so the source lives at package level.
var source Source

//export FillStream
func FillStream(_ unsafe.Pointer, stream *C.Uint8, length C.int) {
	n := int(length) / 4
	out := unsafe.Slice((*float32)(unsafe.Pointer(stream)), n)
	if source == nil {
		for i := range out {
			out[i] = 0
		}
		return
	}
	source.Fill(out)
}

type sdlDevice struct {
	id sdl.AudioDeviceID
}

// openSDL opens the default SDL audio device in callback mode:
// mono float32 at SampleRate with BufferSize frames per callback.
func openSDL(src Source) (Device, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}
	source = src

	id, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_F32SYS,
		Channels: 1,
		Samples:  BufferSize,
		Callback: sdl.AudioCallback(C.FillStream),
	}, nil, 0)
	if err != nil {
		source = nil
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, err
	}

	sdl.PauseAudioDevice(id, false)
	return &sdlDevice{id: id}, nil
}

func (d *sdlDevice) Close() error {
	sdl.PauseAudioDevice(d.id, true)
	sdl.CloseAudioDevice(d.id)
	source = nil
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
