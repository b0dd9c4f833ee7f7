package sim

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
)

func newTestRunner() (*Runner, config.Config) {
	cfg := config.Default()
	return newRunner(cfg.World, cfg.Runner), cfg
}

func TestRunnerStartsGrounded(t *testing.T) {
	r, cfg := newTestRunner()

	if !r.Grounded() {
		t.Fatal("new runner should be grounded")
	}
	b := r.Bounds()
	if b.Bottom() != cfg.World.GroundY() {
		t.Errorf("runner bottom = %v, expected ground %v", b.Bottom(), cfg.World.GroundY())
	}
	if b.W != 44 || b.H != 47 {
		t.Errorf("running pose box = %vx%v, expected 44x47", b.W, b.H)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	r, cfg := newTestRunner()

	if !r.startJump(cfg.Physics.JumpImpulse) {
		t.Fatal("grounded jump should start")
	}
	if r.velocity != cfg.Physics.JumpImpulse {
		t.Errorf("velocity = %v, expected impulse %v", r.velocity, cfg.Physics.JumpImpulse)
	}

	// Airborne jump is a no-op: velocity unchanged.
	r.update(tickDt, cfg.Physics)
	velBefore := r.velocity
	if r.startJump(cfg.Physics.JumpImpulse) {
		t.Error("airborne jump should be rejected")
	}
	if r.velocity != velBefore {
		t.Errorf("airborne jump changed velocity %v -> %v", velBefore, r.velocity)
	}
}

func TestJumpArcAndExactLanding(t *testing.T) {
	r, cfg := newTestRunner()
	groundTop := cfg.World.GroundY() - cfg.Runner.RunHeight

	r.startJump(cfg.Physics.JumpImpulse)

	rose := false
	landed := false
	for i := 0; i < 600; i++ {
		if r.update(tickDt, cfg.Physics) {
			landed = true
			break
		}
		if r.Bounds().Y < groundTop {
			rose = true
		}
	}

	if !rose {
		t.Error("runner never left the ground")
	}
	if !landed {
		t.Fatal("runner never landed")
	}
	// Landing clamps exactly to the ground reference, zeroes velocity.
	if got := r.Bounds().Y; got != groundTop {
		t.Errorf("landing y = %v, expected exactly %v", got, groundTop)
	}
	if r.velocity != 0 {
		t.Errorf("velocity after landing = %v, expected 0", r.velocity)
	}
	if !r.Grounded() {
		t.Error("runner should be grounded after landing")
	}
}

func TestDuckOnlyWhileGrounded(t *testing.T) {
	r, cfg := newTestRunner()

	if !r.setDucking(true) {
		t.Fatal("grounded duck should start")
	}
	if r.Pose() != PoseDucking {
		t.Error("pose should be ducking")
	}
	b := r.Bounds()
	if b.W != 59 || b.H != 30 {
		t.Errorf("ducking pose box = %vx%v, expected 59x30", b.W, b.H)
	}
	if b.Bottom() != cfg.World.GroundY() {
		t.Errorf("duck box bottom = %v, expected pinned to ground %v", b.Bottom(), cfg.World.GroundY())
	}

	// Repeat duck is not a new duck.
	if r.setDucking(true) {
		t.Error("held duck should not re-trigger")
	}

	// Ducking is cleared by jumping and not selectable mid-air.
	r.setDucking(false)
	r.startJump(cfg.Physics.JumpImpulse)
	if r.setDucking(true) {
		t.Error("duck must not start mid-air")
	}
	if r.Pose() != PoseRunning {
		t.Error("airborne pose must be the running pose")
	}
}

func TestJumpCancelsDuck(t *testing.T) {
	r, cfg := newTestRunner()

	r.setDucking(true)
	r.startJump(cfg.Physics.JumpImpulse)
	if r.Ducking() {
		t.Error("jump should clear the ducking flag")
	}
}

func TestAnimationFrameAdvances(t *testing.T) {
	r, cfg := newTestRunner()

	start := r.Frame()
	for i := 0; i < 30; i++ { // 0.5s at the 0.04s frame interval
		r.update(tickDt, cfg.Physics)
	}
	if r.Frame() <= start {
		t.Error("animation frame counter should advance over time")
	}
}

func TestRunnerBothBoxesPersist(t *testing.T) {
	r, _ := newTestRunner()

	duck := r.duckBox
	r.setDucking(true)
	r.setDucking(false)
	if r.duckBox != duck {
		t.Error("pose switching must not modify the inactive box")
	}
	if r.Bounds() != r.runBox {
		t.Error("standing pose should present the run box")
	}
}
