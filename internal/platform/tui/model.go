package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/audio"
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/sim"
)

// duckHoldTicks keeps the duck pose active this many ticks after the last
// duck key press. Terminals deliver key repeats but no release events, so a
// held key shows up as a stream of presses with small gaps between them.
const duckHoldTicks = 9

// Model is the Bubble Tea model running one game session.
type Model struct {
	world   *sim.World
	screen  *core.Screen
	sounds  *audio.Library
	sprites *SpriteSet
	runtime core.RuntimeConfig

	keys keyMap
	help help.Model

	input     core.InputFrame
	frame     sim.Frame
	duckTicks int
	quitting  bool
}

// NewModel creates a model for the given game config, sound library and
// sprite set.
func NewModel(cfg config.Config, sounds *audio.Library, sprites *SpriteSet, runtime core.RuntimeConfig) Model {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	world := sim.New(cfg, runtime.Seed)
	return Model{
		world: world,
		// The bottom row is reserved for the help bar.
		screen:  core.NewScreen(runtime.ScreenW, core.Max(1, runtime.ScreenH-1)),
		sounds:  sounds,
		sprites: sprites,
		runtime: runtime,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		frame:   world.Frame(),
	}
}

// Init starts the tick loop and the background music channel. The music
// ships at volume 0, so by default this is a no-op.
func (m Model) Init() tea.Cmd {
	m.sounds.StartLoop(audio.ChannelMusic)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey maps key presses to intents for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.sounds.StopLoop(audio.ChannelRun)
		m.sounds.StopLoop(audio.ChannelMusic)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		m.input.Set(core.IntentJump)

	case key.Matches(msg, m.keys.Duck):
		m.duckTicks = duckHoldTicks

	case key.Matches(msg, m.keys.Restart):
		if m.frame.GameOver {
			m.input.Set(core.IntentRestart)
		}

	case key.Matches(msg, m.keys.Mute):
		m.sounds.ToggleMute()

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize adjusts the screen buffer. The simulation world keeps its
// logical size; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one fixed step and maps the emitted
// events to sounds.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.duckTicks > 0 {
		m.input.Set(core.IntentDuck)
		m.duckTicks--
	}

	dt := 1.0 / float64(m.runtime.TickRate)
	events := m.world.Advance(dt, m.input)
	m.frame = m.world.Frame()

	for _, e := range events {
		m.playEvent(e)
	}

	// The footstep loop follows the runner: on while grounded and upright,
	// off while airborne, ducking, or dead.
	if m.frame.Running {
		m.sounds.StartLoop(audio.ChannelRun)
	} else {
		m.sounds.StopLoop(audio.ChannelRun)
	}

	m.input.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

func (m *Model) playEvent(e sim.Event) {
	switch e {
	case sim.EventJump:
		m.sounds.Play(audio.SoundJump)
	case sim.EventLand:
		m.sounds.Play(audio.SoundLand)
	case sim.EventDuck:
		m.sounds.Play(audio.SoundDuck)
	case sim.EventSpawn:
		m.sounds.Play(audio.SoundSpawn)
	case sim.EventMilestone:
		m.sounds.Play(audio.SoundMilestone)
	case sim.EventGameOver:
		m.sounds.Play(audio.SoundGameOver)
	case sim.EventRestart:
		m.sounds.Play(audio.SoundRestart)
	}
}

// saveScreenshot writes the current screen to ~/.dinodash/screenshots.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.frame, m.sprites, m.sounds.Muted())

	dir := filepath.Join(os.Getenv("HOME"), ".dinodash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("dino_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the scene plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.frame, m.sprites, m.sounds.Muted())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.Config, sounds *audio.Library, sprites *SpriteSet, runtime core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg, sounds, sprites, runtime),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
