package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/sim"
)

func testFrame(t *testing.T) sim.Frame {
	t.Helper()
	return sim.New(config.Default(), 1).Frame()
}

func testSprites(t *testing.T) *SpriteSet {
	t.Helper()
	set, err := LoadSprites("")
	if err != nil {
		t.Fatalf("LoadSprites: %v", err)
	}
	return set
}

func TestDrawFrameGroundAndHUD(t *testing.T) {
	screen := core.NewScreen(80, 23)
	f := testFrame(t)

	drawFrame(screen, f, testSprites(t), false)

	groundRow := int(f.GroundY * 23 / f.WorldH)
	if got := screen.GetCell(0, groundRow).Rune; got != groundChar {
		t.Errorf("ground row %d cell = %q, expected %q", groundRow, got, groundChar)
	}
	if !strings.Contains(screen.Row(0), "SCORE") {
		t.Error("HUD missing from top row")
	}
	if strings.Contains(screen.Row(0), "MUTED") {
		t.Error("mute indicator shown while unmuted")
	}
}

func TestDrawFrameMutedIndicator(t *testing.T) {
	screen := core.NewScreen(80, 23)
	drawFrame(screen, testFrame(t), testSprites(t), true)

	if !strings.Contains(screen.Row(0), "MUTED") {
		t.Error("mute indicator missing")
	}
}

func TestDrawFrameGameOverOverlay(t *testing.T) {
	screen := core.NewScreen(80, 23)
	f := testFrame(t)
	f.GameOver = true

	drawFrame(screen, f, testSprites(t), false)

	if !strings.Contains(screen.String(), "G A M E  O V E R") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(screen.String(), "Press R to restart") {
		t.Error("restart hint missing")
	}
}

func TestDrawFrameRunnerVisible(t *testing.T) {
	screen := core.NewScreen(80, 23)
	f := testFrame(t)

	drawFrame(screen, f, testSprites(t), false)

	// The runner occupies cells just above the ground at its fixed x.
	v := newSceneView(screen, f)
	r := v.cellRect(f.Runner)
	found := false
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune != ' ' && cell.Rune != groundChar {
				found = true
			}
		}
	}
	if !found {
		t.Error("runner sprite not drawn inside its collision rect")
	}
}

func TestCellRectMinimumSize(t *testing.T) {
	screen := core.NewScreen(20, 6)
	f := testFrame(t)
	v := newSceneView(screen, f)

	// A tiny world box must still occupy at least one cell.
	r := v.cellRect(core.NewBox(500, 100, 2, 2))
	if r.W < 1 || r.H < 1 {
		t.Errorf("rect %+v collapsed below 1x1", r)
	}
}

func TestRenderScreenPreservesText(t *testing.T) {
	screen := core.NewScreen(12, 2)
	screen.Clear()
	screen.DrawText(0, 0, "hello")
	screen.DrawTextColor(0, 1, "world", core.ColorGreen)

	out := RenderScreen(screen)
	if !strings.Contains(out, "hello") {
		t.Error("plain text lost in render")
	}
	if !strings.Contains(out, "world") {
		t.Error("colored text lost in render")
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("newlines = %d, expected 1", strings.Count(out, "\n"))
	}
}
