package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	want := Default()

	if cfg.World != want.World {
		t.Errorf("World = %+v, expected %+v", cfg.World, want.World)
	}
	if cfg.Physics != want.Physics {
		t.Errorf("Physics = %+v, expected %+v", cfg.Physics, want.Physics)
	}
	if cfg.Speed != want.Speed {
		t.Errorf("Speed = %+v, expected %+v", cfg.Speed, want.Speed)
	}
	if cfg.Runner != want.Runner {
		t.Errorf("Runner = %+v, expected %+v", cfg.Runner, want.Runner)
	}
	if cfg.Clouds != want.Clouds {
		t.Errorf("Clouds = %+v, expected %+v", cfg.Clouds, want.Clouds)
	}
	if len(cfg.Spawn.FlyingAltitudes) != 2 {
		t.Errorf("Spawn.FlyingAltitudes = %v, expected two bands", cfg.Spawn.FlyingAltitudes)
	}
	for _, name := range []string{"jump", "land", "duck", "milestone", "game_over", "restart", "spawn", "run", "music"} {
		if _, ok := cfg.Sound.Volumes[name]; !ok {
			t.Errorf("embedded default missing volume for %q", name)
		}
	}
	// The gated defaults ship with these silenced.
	for _, name := range []string{"spawn", "run", "music"} {
		if v := cfg.Sound.Volumes[name]; v != 0 {
			t.Errorf("volume[%q] = %v, expected 0 (disabled by default)", name, v)
		}
	}
}

func TestGroundY(t *testing.T) {
	w := WorldConfig{Width: 960, Height: 360, GroundFraction: 0.78}
	if got := w.GroundY(); got != 280.8 {
		t.Errorf("GroundY() = %v, expected 280.8", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("speed:\n  base: 100\n  max: 200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Speed.Base != 100 || cfg.Speed.Max != 200 {
		t.Errorf("Load() speed = %+v", cfg.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}
