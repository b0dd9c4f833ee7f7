package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-dash/internal/audio"
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/platform/tui"
)

var (
	flagConfig string
	flagMute   bool
	flagSounds string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Space/W/Up - Jump
  S/Down     - Duck (hold)
  R          - Restart (after game over)
  M          - Toggle mute
  Ctrl+S     - Save screenshot
  Q/Ctrl+C   - Quit

Examples:
  dinodash play
  dinodash play --mute
  dinodash play --config ./my-dino.yaml
  dinodash play --sounds ./my-sounds`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with WAV overrides and sprite frames")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dinodash"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		cfg.Sound.Muted = true
	}
	if flagSounds != "" {
		cfg.Sound.Dir = flagSounds
	}

	sprites, err := tui.LoadSprites(cfg.Sound.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Audio is best-effort: a headless or device-less environment still
	// gets a playable, silent game.
	var backend audio.Backend = audio.NoopBackend{}
	beepBackend := audio.NewBeepBackend(cfg.Sound.Dir)
	if initErr := beepBackend.Initialize(); initErr != nil {
		logger.Warn("audio device unavailable, continuing without sound", "error", initErr)
	} else {
		backend = beepBackend
		defer beepBackend.Cleanup()
	}
	sounds := audio.NewLibrary(backend, cfg.Sound)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(cfg, sounds, sprites, runtime); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
