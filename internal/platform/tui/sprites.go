package tui

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

// Sprite is one runner animation frame as rows of runes.
type Sprite []string

// SpriteSet holds every runner pose. Run and Duck alternate between two
// frames; Jump and Dead are single frames.
type SpriteSet struct {
	Run  []Sprite
	Duck []Sprite
	Jump Sprite
	Dead Sprite
}

// LoadSprites builds the sprite set from the embedded frames, with per-file
// overrides from dir when it is non-empty. A set with no usable run frame
// cannot animate the runner at all, so that case is an error and the game
// refuses to start.
func LoadSprites(dir string) (*SpriteSet, error) {
	set := &SpriteSet{
		Run:  []Sprite{loadSprite(dir, "run_0"), loadSprite(dir, "run_1")},
		Duck: []Sprite{loadSprite(dir, "duck_0"), loadSprite(dir, "duck_1")},
		Jump: loadSprite(dir, "jump"),
		Dead: loadSprite(dir, "dead"),
	}

	set.Run = dropEmpty(set.Run)
	set.Duck = dropEmpty(set.Duck)
	if len(set.Run) == 0 {
		return nil, fmt.Errorf("no runner sprite frames available (checked embedded set and %q)", dir)
	}

	// Missing secondary poses fall back to the run frame.
	if len(set.Duck) == 0 {
		set.Duck = set.Run
	}
	if len(set.Jump) == 0 {
		set.Jump = set.Run[0]
	}
	if len(set.Dead) == 0 {
		set.Dead = set.Run[0]
	}
	return set, nil
}

// loadSprite reads one frame, preferring dir/<name>.txt over the embedded
// copy. A missing or empty frame yields nil.
func loadSprite(dir, name string) Sprite {
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, name+".txt")); err == nil {
			if sp := parseSprite(data); len(sp) > 0 {
				return sp
			}
		}
	}
	data, err := spriteFS.ReadFile("sprites/" + name + ".txt")
	if err != nil {
		return nil
	}
	return parseSprite(data)
}

func parseSprite(data []byte) Sprite {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	out := make(Sprite, 0, len(lines))
	for _, line := range lines {
		out = append(out, line)
	}
	if len(out) == 1 && out[0] == "" {
		return nil
	}
	return out
}

func dropEmpty(frames []Sprite) []Sprite {
	out := frames[:0]
	for _, f := range frames {
		if len(f) > 0 {
			out = append(out, f)
		}
	}
	return out
}
