package sim

import (
	"math/rand"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Cloud is a decorative background element. Clouds never collide and never
// score; they drift at their own speed, independent of the world speed.
type Cloud struct {
	Box   core.Box
	speed float64
}

// newCloud spawns a cloud just past the right edge with randomized size,
// altitude and drift speed.
func newCloud(rng *rand.Rand, world config.WorldConfig, cfg config.CloudConfig) Cloud {
	y := cfg.MinY + rng.Float64()*(cfg.MaxY-cfg.MinY)
	w := cfg.MinWidth + rng.Float64()*(cfg.MaxWidth-cfg.MinWidth)
	h := cfg.MinHeight + rng.Float64()*(cfg.MaxHeight-cfg.MinHeight)
	x := world.Width + rng.Float64()*280

	return Cloud{
		Box:   core.NewBox(x, y, w, h),
		speed: cfg.BaseSpeed * (0.8 + rng.Float64()*0.4),
	}
}

// update drifts the cloud left by dt.
func (c *Cloud) update(dt float64) {
	c.Box.X -= c.speed * dt
}

// offscreen reports whether the cloud has left the viewport.
func (c *Cloud) offscreen() bool {
	return c.Box.Right() < 0
}
