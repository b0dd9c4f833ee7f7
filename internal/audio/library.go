package audio

import (
	"github.com/vovakirdan/dino-dash/internal/config"
)

// Loop channel names. Exactly two loop-capable channels exist; each holds at
// most one voice at a time.
const (
	ChannelRun   = SoundRun
	ChannelMusic = SoundMusic
)

type loopState struct {
	handle Handle
	gain   float64
}

// Library caches every sound buffer and gates playback on mute state and
// per-sound volumes. It is owned by the game loop and is not safe for
// concurrent use; the backend handles its own locking.
type Library struct {
	backend Backend
	volumes map[string]float64
	sounds  map[string]Buffer
	master  float64
	muted   bool
	loops   map[string]*loopState
}

// NewLibrary renders or loads every known sound once. File overrides from
// the backend win over synthesis.
func NewLibrary(backend Backend, cfg config.SoundConfig) *Library {
	l := &Library{
		backend: backend,
		volumes: cfg.Volumes,
		sounds:  make(map[string]Buffer),
		master:  clamp01(cfg.MasterVolume),
		muted:   cfg.Muted,
		loops:   make(map[string]*loopState),
	}
	for _, name := range Names() {
		if buf, ok := backend.Load(name); ok {
			l.sounds[name] = buf
			continue
		}
		buf, _ := Synthesize(name)
		l.sounds[name] = buf
	}
	return l
}

// volume returns the configured per-sound volume, 0 for unknown names.
func (l *Library) volume(name string) float64 {
	return clamp01(l.volumes[name])
}

// Play fires a one-shot sound. Muted sessions and sounds configured at
// volume 0 are swallowed; several sounds ship disabled that way.
func (l *Library) Play(name string) {
	if l.muted {
		return
	}
	v := l.volume(name)
	if v == 0 {
		return
	}
	buf, ok := l.sounds[name]
	if !ok {
		return
	}
	l.backend.PlayOneShot(buf, l.master*v)
}

// StartLoop begins looping one of the loop channels. Starting a channel
// that is already playing is a no-op, as is starting a channel whose sound
// is configured at volume 0.
func (l *Library) StartLoop(channel string) {
	if channel != ChannelRun && channel != ChannelMusic {
		return
	}
	if _, active := l.loops[channel]; active {
		return
	}
	v := l.volume(channel)
	if v == 0 {
		return
	}
	buf, ok := l.sounds[channel]
	if !ok {
		return
	}

	gain := l.master * v
	applied := gain
	if l.muted {
		applied = 0
	}
	h := l.backend.PlayLooping(channel, buf, applied)
	l.loops[channel] = &loopState{handle: h, gain: gain}
}

// StopLoop ends a loop channel. Stopping an idle channel is a no-op.
func (l *Library) StopLoop(channel string) {
	st, active := l.loops[channel]
	if !active {
		return
	}
	l.backend.Stop(st.handle)
	delete(l.loops, channel)
}

// LoopActive reports whether the channel currently has a voice.
func (l *Library) LoopActive(channel string) bool {
	_, active := l.loops[channel]
	return active
}

// SetMasterVolume clamps v to [0,1] and re-applies the result to active
// loop channels. One-shot sounds already in flight keep their gain.
func (l *Library) SetMasterVolume(v float64) {
	l.master = clamp01(v)
	for channel, st := range l.loops {
		st.gain = l.master * l.volume(channel)
		if !l.muted {
			l.backend.SetChannelVolume(st.handle, st.gain)
		}
	}
}

// MasterVolume returns the current clamped master volume.
func (l *Library) MasterVolume() float64 {
	return l.master
}

// ToggleMute flips the mute state and returns the new value. Muting
// silences loop channels without stopping them, so unmuting restores
// playback with no restart artifacts.
func (l *Library) ToggleMute() bool {
	l.muted = !l.muted
	for _, st := range l.loops {
		g := st.gain
		if l.muted {
			g = 0
		}
		l.backend.SetChannelVolume(st.handle, g)
	}
	return l.muted
}

// Muted reports the current mute state.
func (l *Library) Muted() bool {
	return l.muted
}
