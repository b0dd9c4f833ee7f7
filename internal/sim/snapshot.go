package sim

import (
	"github.com/vovakirdan/dino-dash/internal/core"
)

// ObstacleView is the renderer-facing view of one obstacle.
type ObstacleView struct {
	Box    core.Box
	Kind   ObstacleKind
	WingUp bool
}

// Frame is the per-tick snapshot the renderer and the audio layer consume.
// It is a read-only copy: mutating it does not affect the simulation.
type Frame struct {
	Runner    core.Box
	Pose      Pose
	AnimFrame int
	Airborne  bool
	Running   bool // Grounded and not ducking; drives the footstep loop

	Obstacles []ObstacleView
	Clouds    []core.Box

	Score     int
	HighScore int
	Speed     float64

	GameOver          bool
	TimeSinceGameOver float64

	WorldW  float64
	WorldH  float64
	GroundY float64
}

// Frame builds the snapshot for the current tick.
func (w *World) Frame() Frame {
	f := Frame{
		Runner:            w.runner.Bounds(),
		Pose:              w.runner.Pose(),
		AnimFrame:         w.runner.Frame(),
		Airborne:          !w.runner.Grounded(),
		Running:           w.runner.Grounded() && !w.runner.Ducking() && !w.gameOver,
		Obstacles:         make([]ObstacleView, len(w.obstacles)),
		Clouds:            make([]core.Box, len(w.clouds)),
		Score:             w.score,
		HighScore:         w.highScore,
		Speed:             w.speed,
		GameOver:          w.gameOver,
		TimeSinceGameOver: w.timeSinceGameOver,
		WorldW:            w.cfg.World.Width,
		WorldH:            w.cfg.World.Height,
		GroundY:           w.cfg.World.GroundY(),
	}
	for i := range w.obstacles {
		o := &w.obstacles[i]
		f.Obstacles[i] = ObstacleView{Box: o.Box, Kind: o.Kind, WingUp: o.wingUp}
	}
	for i := range w.clouds {
		f.Clouds[i] = w.clouds[i].Box
	}
	return f
}
