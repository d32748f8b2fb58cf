package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-whackamole/internal/core"
	"github.com/vovakirdan/tui-whackamole/internal/platform/tui"
	"github.com/vovakirdan/tui-whackamole/internal/whack"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a whack-a-mole board.

Controls:
  S/Enter    - Start (or restart) a game
  1-9        - Whack the mole in that hole
  Click      - Whack the hole under the mouse
  D          - Cycle difficulty between games
  ?          - Toggle full help
  Ctrl+S     - Save a screenshot to ~/.whack/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Moles stay up 1.5 seconds
  normal - Moles stay up 1 second
  hard   - Moles stay up 0.6 to 1.2 seconds at random

Examples:
  whack play
  whack play --difficulty easy
  whack play --seed 42
  whack play --config ./my-whack.yaml --log-file whack.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger("whack")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	var last *whack.Result
	runErr := tui.Run(cfg, tui.GameOptions{
		Game:   gameCfg,
		Logger: logger,
		OnEnd: func(r whack.Result) {
			last = &r
		},
	})
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}

	if last != nil {
		fmt.Printf("Last game: %d points, %d misses (%s)\n", last.Score, last.Misses, last.Difficulty)
	}
	return nil
}
