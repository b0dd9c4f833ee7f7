package sim

import (
	"math/rand"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// ObstacleKind tags the obstacle variant.
type ObstacleKind int

const (
	ObstacleGround ObstacleKind = iota
	ObstacleFlying
)

// groundSizes are the four fixed ground-obstacle size classes
// (small, large, double, triple), drawn uniformly at spawn.
var groundSizes = [...]struct{ w, h float64 }{
	{18, 36},
	{28, 56},
	{38, 46},
	{52, 44},
}

// spawnLead is how far past the right edge obstacles enter the world.
const spawnLead = 12

// flyerHeight is the fixed flying-obstacle box size.
const (
	flyerWidth  = 46
	flyerHeight = 22
)

// Obstacle is a single hazard. Ground obstacles move at the world speed;
// flying ones run slightly faster and flap their wings on a fixed interval
// (cosmetic only, not part of physics).
type Obstacle struct {
	Kind ObstacleKind
	Box  core.Box

	wingTimer float64
	wingUp    bool
}

// WingUp reports the wing-flap phase of a flying obstacle.
func (o *Obstacle) WingUp() bool {
	return o.wingUp
}

// update advances the obstacle by dt at the given world speed.
func (o *Obstacle) update(dt, speed float64, cfg config.Config) {
	if o.Kind == ObstacleFlying {
		flySpeed := speed * cfg.Spawn.FlyingSpeedBoost
		if flySpeed < cfg.Speed.Base {
			flySpeed = cfg.Speed.Base
		}
		o.Box.X -= flySpeed * dt

		o.wingTimer += dt
		if o.wingTimer >= cfg.Spawn.WingFlapInterval {
			o.wingTimer = 0
			o.wingUp = !o.wingUp
		}
		return
	}
	o.Box.X -= speed * dt
}

// offscreen reports whether the trailing edge has crossed the left boundary.
func (o *Obstacle) offscreen() bool {
	return o.Box.Right() < 0
}

// spawner decides what to introduce on each spawn event: mostly ground
// obstacles, occasionally a flyer once the score unlocks them.
type spawner struct {
	cfg config.SpawnConfig
	rng *rand.Rand
}

// spawn creates the next obstacle entering at the right edge of the world.
func (s *spawner) spawn(world config.WorldConfig, score int) Obstacle {
	if s.cfg.FlyingEnabled && score > s.cfg.FlyingUnlock && len(s.cfg.FlyingAltitudes) > 0 &&
		s.rng.Float64() < s.cfg.FlyingChance {
		alt := s.cfg.FlyingAltitudes[s.rng.Intn(len(s.cfg.FlyingAltitudes))]
		y := world.GroundY() - alt
		return Obstacle{
			Kind: ObstacleFlying,
			Box:  core.NewBox(world.Width+spawnLead, y-flyerHeight, flyerWidth, flyerHeight),
		}
	}

	size := groundSizes[s.rng.Intn(len(groundSizes))]
	return Obstacle{
		Kind: ObstacleGround,
		Box:  core.NewBox(world.Width+spawnLead, world.GroundY()-size.h, size.w, size.h),
	}
}

// nextGap draws the distance until the next spawn, uniform in [MinGap, MaxGap].
func (s *spawner) nextGap() float64 {
	return s.cfg.MinGap + s.rng.Float64()*(s.cfg.MaxGap-s.cfg.MinGap)
}
