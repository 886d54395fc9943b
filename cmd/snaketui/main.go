// snaketui is a terminal snake game.
//
// Usage:
//
//	snaketui play             - Play in the current terminal
//	snaketui serve            - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file
//	--seed <value>   - RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketui",
	Short: "Snake in your terminal",
	Long: `snaketui is a terminal snake game: steer the snake, eat, grow,
and speed up until you hit a wall or yourself.

Available commands:
  play     - Play in the current terminal
  serve    - Start an SSH server for remote play

Examples:
  snaketui play
  snaketui play --seed 42
  snaketui serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
