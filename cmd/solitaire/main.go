// solitaire is a Klondike solitaire you play with the mouse, in the
// terminal, in a window or over SSH.
//
// Usage:
//
//	solitaire play              - Play in the terminal
//	solitaire gui               - Play in a window (build with -tags ebiten)
//	solitaire serve             - Start SSH server for remote play
//	solitaire history           - Show recent deals
//	solitaire list              - List available variants
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Deal a specific seed
//	--db <path>       - Set database path (default: ~/.solitaire/deals.db)
//	--config <path>   - Use a custom table config YAML
//	--log-file <path> - Write logs to a file
//	--speed <preset>  - Card speed: slow, normal, fast, instant
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/games/klondike"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagSpeed   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike solitaire for the terminal, a window or SSH",
	Long: `Klondike solitaire driven by the mouse: click a card to send it to the
first pile that accepts it, click the stock to turn a card.

Available commands:
  play     - Play in the terminal
  gui      - Play in a graphical window
  serve    - Start SSH server for remote play
  history  - Show recent deals
  list     - Show available variants

Examples:
  solitaire play
  solitaire play --seed 42 --speed fast
  solitaire gui --assets ./cards
  solitaire serve --ssh :2222
  solitaire history --plain`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParseSpeedPreset(flagSpeed); err != nil {
			return err
		}
		klondike.SetConfigPath(flagConfig)
		klondike.SetSpeedPreset(flagSpeed)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Deal seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.solitaire/deals.db", "Path to deal history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom table config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Card speed: slow, normal, fast, instant")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
