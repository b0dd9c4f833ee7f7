package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const speakerRate = beep.SampleRate(SampleRate)

var errSeekOutOfRange = errors.New("audio: seek position out of range")

// BeepBackend plays buffers through the system audio device via the beep
// speaker. If the device cannot be opened the backend stays uninitialized
// and every playback call is a silent no-op.
type BeepBackend struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	dir         string
	initialized bool
}

// NewBeepBackend creates a backend that looks for WAV overrides in dir
// ("" disables file lookups). Call Initialize before playing.
func NewBeepBackend(dir string) *BeepBackend {
	return &BeepBackend{
		mixer: &beep.Mixer{},
		dir:   dir,
	}
}

// Initialize opens the audio device. Safe to call more than once.
func (b *BeepBackend) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(speakerRate, speakerRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close.
func (b *BeepBackend) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Load reads dir/<name>.wav if present, converted to mono at the speaker
// rate. A missing or unreadable file is not an error; the caller falls back
// to synthesis.
func (b *BeepBackend) Load(name string) (Buffer, bool) {
	if b.dir == "" {
		return nil, false
	}
	f, err := os.Open(filepath.Join(b.dir, name+".wav"))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, false
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		src = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	var out Buffer
	frame := make([][2]float64, 512)
	for {
		n, ok := src.Stream(frame)
		for i := 0; i < n; i++ {
			v := (frame[i][0] + frame[i][1]) / 2
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			out = append(out, int16(v*maxAmplitude))
		}
		if !ok {
			break
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// PlayOneShot plays the buffer once at the given gain.
func (b *BeepBackend) PlayOneShot(buf Buffer, gain float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || len(buf) == 0 {
		return
	}
	speaker.Lock()
	b.mixer.Add(newVolume(newPCMStreamer(buf), gain))
	speaker.Unlock()
}

type beepLoop struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// PlayLooping starts the buffer looping forever and returns a handle for
// later volume changes and stopping.
func (b *BeepBackend) PlayLooping(channel string, buf Buffer, gain float64) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || len(buf) == 0 {
		return nil
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, newPCMStreamer(buf))}
	vol := newVolume(ctrl, gain)

	speaker.Lock()
	b.mixer.Add(vol)
	speaker.Unlock()
	return &beepLoop{ctrl: ctrl, volume: vol}
}

// SetChannelVolume re-applies the gain on a looping voice.
func (b *BeepBackend) SetChannelVolume(h Handle, gain float64) {
	loop, ok := h.(*beepLoop)
	if !ok || loop == nil {
		return
	}
	speaker.Lock()
	if gain <= 0 {
		loop.volume.Silent = true
	} else {
		loop.volume.Silent = false
		loop.volume.Volume = math.Log2(gain)
	}
	speaker.Unlock()
}

// Stop ends a looping voice. The mixer drops the drained streamer on its
// next pass.
func (b *BeepBackend) Stop(h Handle) {
	loop, ok := h.(*beepLoop)
	if !ok || loop == nil {
		return
	}
	speaker.Lock()
	loop.ctrl.Streamer = nil
	speaker.Unlock()
}

// math.Log2(0) is -Inf, so zero gain is expressed through Silent instead.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// pcmStreamer adapts a mono int16 buffer to beep's float64 stereo stream.
// It implements beep.StreamSeeker so it can be wrapped in beep.Loop.
type pcmStreamer struct {
	data Buffer
	pos  int
}

func newPCMStreamer(buf Buffer) *pcmStreamer {
	return &pcmStreamer{data: buf}
}

func (s *pcmStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.data) {
			break
		}
		v := float64(s.data[s.pos]) / 32768
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *pcmStreamer) Err() error { return nil }

func (s *pcmStreamer) Len() int { return len(s.data) }

func (s *pcmStreamer) Position() int { return s.pos }

func (s *pcmStreamer) Seek(p int) error {
	if p < 0 || p > len(s.data) {
		return errSeekOutOfRange
	}
	s.pos = p
	return nil
}
