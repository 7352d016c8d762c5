package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-solitaire/internal/assets"
	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/games/klondike"
	"github.com/vovakirdan/tui-solitaire/internal/platform/gfx"
)

var (
	flagAssets   string
	flagWidth    int
	flagHeight   int
	flagGUISound bool
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a graphical window",
	Long: `Deal a game of solitaire in a window. Mouse and touch drive play.

Card images are read from <assets>/playing-cards/<name>.png, for example
ace_of_hearts.png, 10_of_clubs.png and card_back.png. Missing images are
drawn as plain cards.

The window needs a build with the ebiten tag:
  go build -tags ebiten ./cmd/solitaire

Examples:
  solitaire gui
  solitaire gui --assets ./assets --width 1920 --height 1080`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding playing-cards/*.png")
	guiCmd.Flags().IntVar(&flagWidth, "width", gfx.DefaultWidth, "Window width in pixels")
	guiCmd.Flags().IntVar(&flagHeight, "height", gfx.DefaultHeight, "Window height in pixels")
	guiCmd.Flags().BoolVar(&flagGUISound, "sound", false, "Play sound cues")
}

func runGUI(_ *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := gfx.Options{
		Title:  "Klondike",
		Width:  flagWidth,
		Height: flagHeight,
		Logger: logger,
	}
	if flagAssets != "" {
		cache := assets.NewCache(assets.NewFSProvider(os.DirFS(flagAssets), assets.DefaultDir))
		if missing := assets.Preload(cache); len(missing) > 0 {
			logger.Warn("card images missing", "count", len(missing), "first", missing[0])
		}
		opts.Assets = cache
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}

	sound := openSound(flagGUISound, logger)
	opts.Sound = sound
	opts.Store = openStore()

	runErr := gfx.Run(klondike.New(), cfg, opts)

	sound.Close()
	if opts.Store != nil {
		opts.Store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
