package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/currentlycrafting/survival/internal/audio"
	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/platform/tui"
	"github.com/currentlycrafting/survival/internal/storage"
	"github.com/currentlycrafting/survival/internal/survival"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagBest       string
	flagAssets     string
	flagMute       bool
	flagLogFile    string
	flagShowFPS    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a survival run in the terminal.

Controls:
  Arrows/WASD  - Move
  P/Esc        - Pause
  R/Enter      - Restart (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower pursuers, sparser spawns
  normal - The config as written
  hard   - Faster pursuers, denser spawns, summoning bosses

Examples:
  survival play
  survival play --difficulty hard --layout bunkers
  survival play --best 2:30
  survival play --config ./my-survival.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
	addPlayFlags(menuCmd)
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Map layout (see 'survival layouts')")
}

// addPlayFlags registers the flags shared by play and menu.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagBest, "best", "", "Longest survival time to beat, as m:ss")
	cmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding game_music.wav and boss_theme.wav")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	cmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show simulation ticks per second in the HUD")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(flagLayout, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play builds a session from the flags and hosts it in the terminal until
// the player quits.
func play(layout, difficulty string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; try 'survival sim'")
	}

	best := 0
	if flagBest != "" {
		b, err := survival.ParseClock(flagBest)
		if err != nil {
			return fmt.Errorf("--best: %w", err)
		}
		best = b
	}

	cfg, preset, err := buildConfig(flagConfig, difficulty, layout)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	notifiers := survival.MultiNotifier{survival.LogNotifier{Logger: logger}}
	if !flagMute {
		player := audio.New(flagAssets, logger.WithPrefix("audio"))
		if err := player.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("audio disabled", "error", err)
		} else {
			defer player.Close()
			notifiers = append(notifiers, player)
		}
	}

	seed := resolveSeed()
	session, err := survival.NewSession(cfg,
		survival.WithSeed(seed),
		survival.WithLogger(logger),
		survival.WithNotifier(notifiers),
	)
	if err != nil {
		return err
	}
	session.SetLongest(best)

	// Run history only lives as long as this process.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		store = nil
	}

	logger.Info("starting run", "seed", seed, "layout", layoutName(cfg), "difficulty", preset)
	runErr := tui.Run(session, tui.Options{
		Store:      store,
		Logger:     logger,
		Seed:       seed,
		Layout:     layoutName(cfg),
		Difficulty: string(preset),
		ShowFPS:    flagShowFPS,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	fmt.Printf("Longest Time: %s -- Level: %d\n",
		survival.FormatClock(session.State().LongestSurvivalSeconds), session.State().Level)
	return nil
}

// openLogFile returns the log destination. The alternate screen owns the
// terminal, so logs go to a file or nowhere.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a map and difficulty, then play",
	Args:  cobra.NoArgs,
	Run:   runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	initial, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := tui.RunMenu(survival.DefaultLayout, initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if result.Quit {
		return
	}

	if err := play(result.Layout, string(result.Difficulty)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
