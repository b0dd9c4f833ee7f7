// Package config provides YAML-based configuration loading for the game.
package config

// Config contains all tunable parameters for a game session.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Runner  RunnerConfig  `yaml:"runner"`
	Physics PhysicsConfig `yaml:"physics"`
	Speed   SpeedConfig   `yaml:"speed"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Clouds  CloudConfig   `yaml:"clouds"`
	Sound   SoundConfig   `yaml:"sound"`
}

// WorldConfig defines the logical playfield.
type WorldConfig struct {
	Width          float64 `yaml:"width"`           // Logical width in pixels
	Height         float64 `yaml:"height"`          // Logical height in pixels
	GroundFraction float64 `yaml:"ground_fraction"` // Ground line as a fraction of height
}

// GroundY returns the y-coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height * w.GroundFraction
}

// RunnerConfig defines the player character's placement and poses.
type RunnerConfig struct {
	X             float64 `yaml:"x"`              // Fixed horizontal position
	RunWidth      float64 `yaml:"run_width"`      // Running pose box
	RunHeight     float64 `yaml:"run_height"`
	DuckWidth     float64 `yaml:"duck_width"`     // Ducking pose box
	DuckHeight    float64 `yaml:"duck_height"`
	FrameInterval float64 `yaml:"frame_interval"` // Seconds per animation frame
}

// PhysicsConfig defines jump physics in pixels and seconds.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // px/s^2 downward
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s, negative = upward
}

// SpeedConfig defines world speed progression.
type SpeedConfig struct {
	Base       float64 `yaml:"base"`        // px/s at score 0
	PerHundred float64 `yaml:"per_hundred"` // px/s added per 100 score
	Max        float64 `yaml:"max"`         // px/s cap
	Easing     float64 `yaml:"easing"`      // Fraction of the gap closed per tick
}

// SpawnConfig defines obstacle spawning.
type SpawnConfig struct {
	MinGap           float64   `yaml:"min_gap"`            // px between spawns
	MaxGap           float64   `yaml:"max_gap"`
	FlyingEnabled    bool      `yaml:"flying_enabled"`
	FlyingUnlock     int       `yaml:"flying_unlock"`      // Score above which flyers may spawn
	FlyingChance     float64   `yaml:"flying_chance"`      // Probability per spawn event
	FlyingAltitudes  []float64 `yaml:"flying_altitudes"`   // Heights above the ground line
	FlyingSpeedBoost float64   `yaml:"flying_speed_boost"` // Multiplier over world speed
	WingFlapInterval float64   `yaml:"wing_flap_interval"` // Seconds per wing toggle
}

// CloudConfig defines the decorative cloud layer.
type CloudConfig struct {
	MinCount  int     `yaml:"min_count"` // Population maintained at all times
	MinY      float64 `yaml:"min_y"`
	MaxY      float64 `yaml:"max_y"`
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
	BaseSpeed float64 `yaml:"base_speed"` // px/s, independent of world speed
}

// SoundConfig defines playback volumes. Sounds with volume 0 are disabled;
// several are shipped disabled on purpose (run loop, music, spawn pop).
type SoundConfig struct {
	MasterVolume float64            `yaml:"master_volume"`
	Muted        bool               `yaml:"muted"`
	Dir          string             `yaml:"dir"` // Optional directory of WAV overrides
	Volumes      map[string]float64 `yaml:"volumes"`
}
