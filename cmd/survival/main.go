// survival is a real-time top-down survival game for the terminal.
//
// Usage:
//
//	survival play             - Play in the terminal
//	survival menu             - Pick a map and difficulty, then play
//	survival sim              - Run headless simulations and print the results
//	survival layouts          - List available map layouts
//	survival defaults         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Override the simulation tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/registry"
	"github.com/currentlycrafting/survival/internal/survival"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survival",
	Short: "Survival - outlast the swarm in your terminal",
	Long: `Survival is a top-down arena game: dodge circling enemies and bosses
for as long as you can. Every two minutes the level rises and every fifth
level brings a boss battle.

Available commands:
  play      - Play a game directly
  menu      - Interactive map and difficulty picker
  sim       - Headless simulation runs
  layouts   - Show all map layouts
  defaults  - Print the default config

Examples:
  survival play
  survival play --layout pillars --difficulty hard
  survival sim --runs 5 --seconds 600 --pattern circle
  survival defaults > ~/.survival/configs/survival.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger creates the process logger writing to w at the --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "survival",
		Level:           level,
	}), nil
}

// resolveSeed returns the --seed value, or a time-based seed when unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// buildConfig loads the config file and applies the difficulty preset,
// layout override and tick rate flag.
func buildConfig(path, difficulty, layout string) (config.Config, config.DifficultyPreset, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)

	if layout != "" {
		if !registry.Exists(layout) {
			return cfg, "", fmt.Errorf("unknown layout %q (run 'survival layouts' to list them)", layout)
		}
		cfg.Map.Preset = layout
		cfg.Map.Layout = nil
	}
	if flagFPS > 0 {
		cfg.Clock.TickRate = flagFPS
	}

	return cfg, preset, cfg.Validate()
}

// layoutName describes the map of cfg for run records.
func layoutName(cfg config.Config) string {
	switch {
	case len(cfg.Map.Layout) > 0:
		return "custom"
	case cfg.Map.Preset != "":
		return cfg.Map.Preset
	default:
		return survival.DefaultLayout
	}
}
