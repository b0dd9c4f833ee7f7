// Package sim implements the deterministic game simulation: runner physics,
// obstacle spawning, difficulty scaling, collision detection and the
// running/game-over state machine. It is pure logic with no rendering or
// audio dependencies; each tick returns the trigger events it produced.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// scoreRate is the score gained per second of simulated time. Score is
// accumulated as floor(scoreRate*dt) each tick, matching the original tuning
// even though it drifts at odd frame rates.
const scoreRate = 60

// milestoneStep is the score interval between milestone chimes and speed-ups.
const milestoneStep = 100

// World is the simulation core. It owns the runner, the obstacle and cloud
// collections, score and speed, and the Running/GameOver state machine.
// A World is single-threaded: Advance must not be called concurrently.
type World struct {
	cfg config.Config
	rng *rand.Rand

	runner    *Runner
	spawner   spawner
	obstacles []Obstacle
	clouds    []Cloud

	spawnDistance float64 // px remaining until the next spawn event
	speed         float64 // current world speed, px/s
	score         int
	highScore     int
	nextMilestone int

	gameOver          bool
	timeSinceGameOver float64

	events []Event // reused across ticks
}

// New creates a world ready to play with the given seed.
func New(cfg config.Config, seed int64) *World {
	w := &World{cfg: cfg}
	w.Reset(seed)
	return w
}

// Reset reinitializes all entities and session state. The high score carries
// forward as the max of the finished session's score; everything else returns
// to defaults.
func (w *World) Reset(seed int64) {
	w.highScore = core.Max(w.highScore, w.score)

	w.rng = rand.New(rand.NewSource(seed))
	w.runner = newRunner(w.cfg.World, w.cfg.Runner)
	w.spawner = spawner{cfg: w.cfg.Spawn, rng: w.rng}
	w.obstacles = w.obstacles[:0]
	w.clouds = w.clouds[:0]
	for i := 0; i < w.cfg.Clouds.MinCount; i++ {
		w.clouds = append(w.clouds, newCloud(w.rng, w.cfg.World, w.cfg.Clouds))
	}

	w.spawnDistance = w.spawner.nextGap()
	w.speed = w.cfg.Speed.Base
	w.score = 0
	w.nextMilestone = milestoneStep
	w.gameOver = false
	w.timeSinceGameOver = 0
}

// Advance runs one simulation tick of dt seconds with the sampled input
// intents, and returns the trigger events produced, in order. The returned
// slice is reused on the next call.
func (w *World) Advance(dt float64, in core.InputFrame) []Event {
	w.events = w.events[:0]

	if w.gameOver {
		w.timeSinceGameOver += dt
		if in.Has(core.IntentRestart) {
			w.Reset(w.rng.Int63())
			w.emit(EventRestart)
		}
		return w.events
	}

	// Intents. Jump is a no-op while airborne; duck only sticks when grounded.
	if in.Has(core.IntentJump) && w.runner.startJump(w.cfg.Physics.JumpImpulse) {
		w.emit(EventJump)
	}
	if w.runner.setDucking(in.Has(core.IntentDuck)) {
		w.emit(EventDuck)
	}
	if w.runner.update(dt, w.cfg.Physics) {
		w.emit(EventLand)
	}

	// Speed eases toward the score-derived target, never snapping.
	target := w.targetSpeed()
	w.speed += (target - w.speed) * w.cfg.Speed.Easing

	// Score ticks at ~60/sec of simulated time.
	w.score += int(scoreRate * dt)
	for w.score >= w.nextMilestone {
		w.emit(EventMilestone)
		w.nextMilestone += milestoneStep
	}

	// Spawning progresses with distance traveled.
	w.spawnDistance -= w.speed * dt
	if w.spawnDistance <= 0 {
		w.obstacles = append(w.obstacles, w.spawner.spawn(w.cfg.World, w.score))
		w.spawnDistance = w.spawner.nextGap()
		w.emit(EventSpawn)
	}

	// Advance obstacles and expire the ones past the left edge.
	live := w.obstacles[:0]
	for i := range w.obstacles {
		w.obstacles[i].update(dt, w.speed, w.cfg)
		if !w.obstacles[i].offscreen() {
			live = append(live, w.obstacles[i])
		}
	}
	w.obstacles = live

	// Clouds drift, expire, and are topped up to the minimum population.
	liveClouds := w.clouds[:0]
	for i := range w.clouds {
		w.clouds[i].update(dt)
		if !w.clouds[i].offscreen() {
			liveClouds = append(liveClouds, w.clouds[i])
		}
	}
	w.clouds = liveClouds
	for len(w.clouds) < w.cfg.Clouds.MinCount {
		w.clouds = append(w.clouds, newCloud(w.rng, w.cfg.World, w.cfg.Clouds))
	}

	// Collision: the first hit ends the session, remaining obstacles are
	// not examined this tick.
	bounds := w.runner.Bounds()
	for i := range w.obstacles {
		if bounds.Intersects(w.obstacles[i].Box) {
			w.gameOver = true
			w.timeSinceGameOver = 0
			w.highScore = core.Max(w.highScore, w.score)
			w.emit(EventGameOver)
			break
		}
	}

	return w.events
}

// targetSpeed is the speed the world eases toward at the current score.
func (w *World) targetSpeed() float64 {
	s := w.cfg.Speed
	target := s.Base + float64(w.score/milestoneStep)*s.PerHundred
	if target > s.Max {
		target = s.Max
	}
	return target
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// Score returns the current session score.
func (w *World) Score() int {
	return w.score
}

// HighScore returns the best score seen since process start.
func (w *World) HighScore() int {
	return w.highScore
}

// Speed returns the current world speed in px/s.
func (w *World) Speed() float64 {
	return w.speed
}

// GameOver reports whether the session has ended.
func (w *World) GameOver() bool {
	return w.gameOver
}
