package audio

import "sort"

// Sound effect names. These double as the loop channel identifiers for the
// two loop-capable sounds.
const (
	SoundJump      = "jump"
	SoundLand      = "land"
	SoundDuck      = "duck"
	SoundSpawn     = "spawn"
	SoundMilestone = "milestone"
	SoundGameOver  = "game_over"
	SoundRestart   = "restart"
	SoundRun       = "run"
	SoundMusic     = "music"
)

// synthesizers maps each sound name to its recipe. Every effect is a fixed
// composition of the primitive generators, so the full set renders in one
// pass at startup.
var synthesizers = map[string]func() Buffer{
	SoundJump:      synthJump,
	SoundLand:      synthFootstep,
	SoundDuck:      synthDuck,
	SoundSpawn:     synthPop,
	SoundMilestone: synthMilestone,
	SoundGameOver:  synthGameOver,
	SoundRestart:   synthRestart,
	SoundRun:       synthFootstepLoop,
	SoundMusic:     synthMusicLoop,
}

// Synthesize renders the named effect, or reports false for unknown names.
func Synthesize(name string) (Buffer, bool) {
	fn, ok := synthesizers[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Names returns every known sound name in a stable order.
func Names() []string {
	names := make([]string, 0, len(synthesizers))
	for name := range synthesizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// synthFootstep is a low thump with a short noise transient, shared by the
// landing sound and the run loop.
func synthFootstep() Buffer {
	base := RenderSine(140, 0.08, 0.6)
	noise := RenderNoise(0.06, 0.2)
	return Mix(base, noise, 1.0, 0.6)
}

func synthFootstepLoop() Buffer {
	step := synthFootstep()
	gap := Silence(0.10)
	return Concat(step, gap, step, gap)
}

func synthJump() Buffer {
	return RenderSweep(300, 1200, 0.22, 0.45)
}

func synthDuck() Buffer {
	return RenderSweep(800, 300, 0.14, 0.40)
}

func synthPop() Buffer {
	return RenderSquare(600, 0.05, 0.35)
}

// synthMilestone is a two-note ascending stinger (A5 then D6).
func synthMilestone() Buffer {
	a5 := RenderSine(880, 0.08, 0.35)
	d6 := RenderSine(1174.66, 0.10, 0.35)
	return Concat(a5, d6)
}

func synthGameOver() Buffer {
	fall := RenderSweep(400, 80, 0.35, 0.40)
	noise := RenderNoise(0.30, 0.20)
	return Mix(fall, noise, 1.0, 1.0)
}

func synthRestart() Buffer {
	up1 := RenderSine(660, 0.06, 0.30)
	up2 := RenderSine(880, 0.10, 0.30)
	return Concat(up1, up2)
}

// synthMusicLoop is a gentle pad of three layered low-volume sines over a
// short seamless loop.
func synthMusicLoop() Buffer {
	base := RenderSine(220, 1.6, 0.08)
	fifth := RenderSine(330, 1.6, 0.06)
	high := RenderSine(440, 1.6, 0.04)
	return Mix(Mix(base, fifth, 1.0, 1.0), high, 1.0, 1.0)
}
