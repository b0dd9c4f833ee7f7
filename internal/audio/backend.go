package audio

// Handle identifies an active looping voice on a backend.
type Handle any

// Backend is the playback device the sound library drives. Implementations
// must treat every call as fire-and-forget: the caller never waits on
// playback. Load gives the backend a chance to substitute a pre-recorded
// file for a synthesized buffer; returning false means no override exists.
type Backend interface {
	Load(name string) (Buffer, bool)
	PlayOneShot(buf Buffer, gain float64)
	PlayLooping(channel string, buf Buffer, gain float64) Handle
	SetChannelVolume(h Handle, gain float64)
	Stop(h Handle)
}

// NoopBackend discards all playback. It serves sessions with no audio
// device, such as remote SSH games.
type NoopBackend struct{}

func (NoopBackend) Load(string) (Buffer, bool) { return nil, false }

func (NoopBackend) PlayOneShot(Buffer, float64) {}

func (NoopBackend) PlayLooping(string, Buffer, float64) Handle { return nil }

func (NoopBackend) SetChannelVolume(Handle, float64) {}

func (NoopBackend) Stop(Handle) {}
