package synth

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{1.5, 32767},   // clipped
		{-1.5, -32767}, // clipped
		{0.5, 16384},   // 16383.5 rounds away from zero
		{-0.25, -8192},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWAVRoundTrip(t *testing.T) {
	e := NewEngine()
	e.Channel(Pulse1).NoteOn(440)
	e.Channel(Wave).NoteOn(130.81)

	// enough blocks to span several encoder chunks
	buf := make([]float32, BufferSize)
	for i := 0; i < 12; i++ {
		e.Fill(buf)
	}
	capture := e.Capture()
	want := capture.Samples()

	var out bytes.Buffer
	if err := capture.WriteWAV(&out); err != nil {
		t.Fatal(err)
	}
	b := out.Bytes()

	if len(b) != 44+2*len(want) {
		t.Fatalf("file size = %d, want %d", len(b), 44+2*len(want))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[12:16]) != "fmt " {
		t.Fatal("malformed RIFF header")
	}
	if got := binary.LittleEndian.Uint16(b[20:]); got != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(b[22:]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(b[24:]); got != SampleRate {
		t.Errorf("sample rate = %d, want %d", got, SampleRate)
	}
	if got := binary.LittleEndian.Uint16(b[34:]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if string(b[36:40]) != "data" {
		t.Fatal("missing data chunk")
	}
	if got := binary.LittleEndian.Uint32(b[40:]); got != uint32(2*len(want)) {
		t.Errorf("data bytes = %d, want %d", got, 2*len(want))
	}

	for i, s := range want {
		got := int16(binary.LittleEndian.Uint16(b[44+2*i:]))
		if got != quantize(s) {
			t.Fatalf("sample %d = %d, want %d", i, got, quantize(s))
		}
	}
}

func TestSaveWritesFile(t *testing.T) {
	e := NewEngine()
	e.Channel(Pulse2).NoteOn(523.25)
	buf := make([]float32, BufferSize)
	e.Fill(buf)

	path := filepath.Join(t.TempDir(), "session.wav")
	if err := e.Capture().Save(path); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 44+2*BufferSize {
		t.Errorf("file size = %d, want %d", len(b), 44+2*BufferSize)
	}
}

func TestEmptyCapture(t *testing.T) {
	c := &Capture{}
	if !c.Empty() {
		t.Error("new capture not empty")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}
