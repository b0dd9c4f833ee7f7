// dinodash is a terminal endless runner with procedurally synthesized sound.
//
// Usage:
//
//	dinodash play            - Play in the current terminal
//	dinodash serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinodash",
	Short: "Dino Dash - endless runner in your terminal",
	Long: `Dino Dash is a terminal endless runner: jump and duck past obstacles
while the world speeds up. All sound effects are synthesized at startup;
drop WAV files in a sounds directory to replace them.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play

Examples:
  dinodash play
  dinodash play --seed 42
  dinodash serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
