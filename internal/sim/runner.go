package sim

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Pose identifies which collision box the runner currently presents.
type Pose int

const (
	PoseRunning Pose = iota
	PoseDucking
)

// Runner is the player character. It owns two collision boxes, one per pose;
// both persist with their bottom edges pinned to the ground line, and the
// active one is selected by state.
type Runner struct {
	cfg     config.RunnerConfig
	groundY float64

	runBox  core.Box
	duckBox core.Box

	velocity float64 // Vertical, px/s, negative = upward
	jumping  bool
	ducking  bool

	frameTimer float64
	frame      int // Free-running animation frame counter
}

// newRunner creates a runner standing on the ground line.
func newRunner(world config.WorldConfig, cfg config.RunnerConfig) *Runner {
	groundY := world.GroundY()
	return &Runner{
		cfg:     cfg,
		groundY: groundY,
		runBox:  core.NewBox(cfg.X, groundY-cfg.RunHeight, cfg.RunWidth, cfg.RunHeight),
		duckBox: core.NewBox(cfg.X, groundY-cfg.DuckHeight, cfg.DuckWidth, cfg.DuckHeight),
	}
}

// Bounds returns the active collision box for the current pose.
func (r *Runner) Bounds() core.Box {
	if r.ducking && !r.jumping {
		return r.duckBox
	}
	return r.runBox
}

// Pose returns the current pose.
func (r *Runner) Pose() Pose {
	if r.ducking && !r.jumping {
		return PoseDucking
	}
	return PoseRunning
}

// Grounded reports whether the runner is on the ground.
func (r *Runner) Grounded() bool {
	return !r.jumping
}

// Ducking reports whether the runner is in the ducking pose.
func (r *Runner) Ducking() bool {
	return r.ducking
}

// Frame returns the free-running animation frame counter. The renderer
// reduces it modulo its own frame count.
func (r *Runner) Frame() int {
	return r.frame
}

// startJump applies the jump impulse. Jumping is only possible when grounded;
// calling this mid-air is a no-op. Returns whether the jump started.
func (r *Runner) startJump(impulse float64) bool {
	if r.jumping {
		return false
	}
	r.jumping = true
	r.ducking = false
	r.velocity = impulse
	return true
}

// setDucking updates the ducking flag from the sampled duck intent.
// Ducking is only selectable while grounded. Returns whether a duck started
// this tick (the leading edge, used for the duck trigger event).
func (r *Runner) setDucking(duck bool) bool {
	duck = duck && !r.jumping
	started := duck && !r.ducking
	r.ducking = duck
	return started
}

// update integrates jump physics and advances the animation counter.
// Returns whether the runner landed this tick.
func (r *Runner) update(dt float64, phys config.PhysicsConfig) bool {
	r.frameTimer += dt
	if r.frameTimer >= r.cfg.FrameInterval {
		r.frameTimer = 0
		r.frame++
	}

	if !r.jumping {
		return false
	}

	r.velocity += phys.Gravity * dt
	r.runBox.Y += r.velocity * dt

	// Land: clamp to the ground exactly, no penetration below it.
	if r.runBox.Y >= r.groundY-r.cfg.RunHeight {
		r.runBox.Y = r.groundY - r.cfg.RunHeight
		r.velocity = 0
		r.jumping = false
		return true
	}
	return false
}
