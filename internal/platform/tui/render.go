package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/sim"
)

// Scene glyphs.
const (
	groundChar = '═'
	cactusChar = '▓'
	cloudChar  = '░'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string. Adjacent cells
// with the same color are grouped to keep the ANSI overhead down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// sceneView projects world coordinates onto the screen buffer.
type sceneView struct {
	dst *core.Screen
	sx  float64 // cells per world pixel, horizontal
	sy  float64
}

func newSceneView(dst *core.Screen, f sim.Frame) sceneView {
	return sceneView{
		dst: dst,
		sx:  float64(dst.Width()) / f.WorldW,
		sy:  float64(dst.Height()) / f.WorldH,
	}
}

// cellRect maps a world-space box to screen cells, at least 1x1 so small
// obstacles stay visible on narrow terminals.
func (v sceneView) cellRect(b core.Box) core.Rect {
	x := int(b.X * v.sx)
	y := int(b.Y * v.sy)
	w := core.Max(1, int(b.W*v.sx))
	h := core.Max(1, int(b.H*v.sy))
	return core.NewRect(x, y, w, h)
}

// drawFrame renders one simulation snapshot.
func drawFrame(dst *core.Screen, f sim.Frame, sprites *SpriteSet, muted bool) {
	dst.Clear()
	v := newSceneView(dst, f)

	for _, c := range f.Clouds {
		dst.DrawRect(v.cellRect(c), cloudChar, core.ColorGray)
	}

	groundRow := int(f.GroundY * v.sy)
	dst.DrawHLine(0, groundRow, dst.Width(), groundChar, core.ColorGray)

	for _, o := range f.Obstacles {
		drawObstacle(v, o)
	}

	drawRunner(v, f, sprites)
	drawHUD(dst, f, muted)

	if f.GameOver {
		drawGameOver(dst, f)
	}
}

func drawObstacle(v sceneView, o sim.ObstacleView) {
	r := v.cellRect(o.Box)
	if o.Kind == sim.ObstacleGround {
		v.dst.DrawRect(r, cactusChar, core.ColorGreen)
		return
	}

	// Flyers are a single glyph row; the wing phase alternates the shape.
	wings := `\◇/`
	if o.WingUp {
		wings = `/◇\`
	}
	v.dst.DrawTextColor(r.X, r.Y, wings, core.ColorMagenta)
}

func drawRunner(v sceneView, f sim.Frame, sprites *SpriteSet) {
	sprite := sprites.Run[f.AnimFrame%len(sprites.Run)]
	switch {
	case f.GameOver:
		sprite = sprites.Dead
	case f.Airborne:
		sprite = sprites.Jump
	case f.Pose == sim.PoseDucking:
		sprite = sprites.Duck[f.AnimFrame%len(sprites.Duck)]
	}

	r := v.cellRect(f.Runner)
	// Anchor the sprite's bottom row to the bottom of the collision box.
	top := r.Y + r.H - len(sprite)
	for dy, line := range sprite {
		x := r.X
		for _, ch := range line {
			if ch != ' ' {
				v.dst.SetCell(x, top+dy, ch, core.ColorBrightWhite)
			}
			x++
		}
	}
}

func drawHUD(dst *core.Screen, f sim.Frame, muted bool) {
	hud := fmt.Sprintf(" HI %05d  SCORE %05d ", f.HighScore, f.Score)
	dst.DrawTextColor(dst.Width()-len(hud)-1, 0, hud, core.ColorWhite)

	if muted {
		dst.DrawTextColor(1, 0, " MUTED ", core.ColorGray)
	}
}

func drawGameOver(dst *core.Screen, f sim.Frame) {
	title := "G A M E  O V E R"
	subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", f.Score)

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
