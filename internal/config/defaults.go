package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultYAML []byte

// Default returns the default configuration: the parameter table the game
// was tuned against. Obstacle size classes are fixed in the spawner, not here.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:          960,
			Height:         360,
			GroundFraction: 0.78,
		},
		Runner: RunnerConfig{
			X:             72,
			RunWidth:      44,
			RunHeight:     47,
			DuckWidth:     59,
			DuckHeight:    30,
			FrameInterval: 0.04,
		},
		Physics: PhysicsConfig{
			Gravity:     2000,
			JumpImpulse: -640,
		},
		Speed: SpeedConfig{
			Base:       360,
			PerHundred: 60,
			Max:        780,
			Easing:     0.08,
		},
		Spawn: SpawnConfig{
			MinGap:           320,
			MaxGap:           640,
			FlyingEnabled:    true,
			FlyingUnlock:     400,
			FlyingChance:     0.18,
			FlyingAltitudes:  []float64{90, 140},
			FlyingSpeedBoost: 1.05,
			WingFlapInterval: 0.18,
		},
		Clouds: CloudConfig{
			MinCount:  3,
			MinY:      40,
			MaxY:      140,
			MinWidth:  40,
			MaxWidth:  72,
			MinHeight: 18,
			MaxHeight: 26,
			BaseSpeed: 60,
		},
		Sound: SoundConfig{
			MasterVolume: 0.8,
			Muted:        false,
			Volumes: map[string]float64{
				"jump":      0.8,
				"land":      0.8,
				"duck":      0.7,
				"milestone": 0.8,
				"game_over": 0.9,
				"restart":   0.8,
				// Disabled out of the box; raise to enable.
				"spawn": 0,
				"run":   0,
				"music": 0,
			},
		},
	}
}
