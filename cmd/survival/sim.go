package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
	"github.com/currentlycrafting/survival/internal/platform/tui"
	"github.com/currentlycrafting/survival/internal/storage"
	"github.com/currentlycrafting/survival/internal/survival"
)

var (
	flagSimSeconds  int
	flagSimRuns     int
	flagSimPattern  string
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless simulations",
	Long: `Run one or more deterministic survival runs with a scripted input
pattern and print how each one ended, followed by the leaderboard.

Patterns:
  idle    - Stand still
  circle  - Walk a square loop around the spawn point
  zigzag  - Sweep diagonally back and forth

Examples:
  survival sim --seed 42
  survival sim --runs 10 --seconds 900 --pattern zigzag
  survival sim --realtime --pattern circle`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().StringVar(&flagLayout, "layout", "", "Map layout (see 'survival layouts')")
	simCmd.Flags().IntVar(&flagSimSeconds, "seconds", 300, "Simulated seconds per run")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs; run i uses seed+i")
	simCmd.Flags().StringVar(&flagSimPattern, "pattern", "circle", "Input pattern: idle, circle, zigzag")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace runs in real time and draw them")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, preset, err := buildConfig(flagConfig, flagDifficulty, flagLayout)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	opts := simOptions{
		cfg:        cfg,
		difficulty: string(preset),
		seed:       resolveSeed(),
		seconds:    flagSimSeconds,
		runs:       flagSimRuns,
		pattern:    flagSimPattern,
		realtime:   flagSimRealtime,
		logger:     logger,
	}
	return simulate(cmd.Context(), cmd.OutOrStdout(), opts)
}

type simOptions struct {
	cfg        config.Config
	difficulty string
	seed       int64
	seconds    int
	runs       int
	pattern    string
	realtime   bool
	logger     *log.Logger
}

// pattern returns the scripted intent for a tick.
type pattern func(tick uint64, tickRate int) core.Intent

var patterns = map[string]pattern{
	"idle": func(uint64, int) core.Intent { return core.Intent{} },
	"circle": func(tick uint64, rate int) core.Intent {
		switch (tick / uint64(2*rate)) % 4 {
		case 0:
			return core.Intent{Right: true}
		case 1:
			return core.Intent{Down: true}
		case 2:
			return core.Intent{Left: true}
		default:
			return core.Intent{Up: true}
		}
	},
	"zigzag": func(tick uint64, rate int) core.Intent {
		sec := tick / uint64(rate)
		return core.Intent{
			Up:    sec%2 == 0,
			Down:  sec%2 == 1,
			Right: (sec/4)%2 == 0,
			Left:  (sec/4)%2 == 1,
		}
	},
}

// simulate runs opts.runs sessions and reports them to out.
func simulate(ctx context.Context, out io.Writer, opts simOptions) error {
	next, ok := patterns[opts.pattern]
	if !ok {
		return fmt.Errorf("unknown pattern %q (idle, circle, zigzag)", opts.pattern)
	}
	if opts.runs < 1 || opts.seconds < 1 {
		return fmt.Errorf("--runs and --seconds must be positive")
	}
	if opts.logger == nil {
		opts.logger = log.New(io.Discard)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	layout := layoutName(opts.cfg)
	for i := 0; i < opts.runs; i++ {
		seed := opts.seed + int64(i)
		session, err := survival.NewSession(opts.cfg,
			survival.WithSeed(seed),
			survival.WithLogger(opts.logger),
			survival.WithNotifier(survival.LogNotifier{Logger: opts.logger.With("run", i+1)}),
		)
		if err != nil {
			return err
		}

		longest, err := store.LongestSurvival()
		if err != nil {
			return err
		}
		session.SetLongest(longest)

		if opts.realtime {
			if err := runRealtime(ctx, out, session, next, opts.seconds); err != nil {
				return err
			}
		} else {
			runHeadless(session, next, opts.seconds)
		}

		st := session.State()
		if _, err := store.SaveRun(storage.Run{
			Seed:        seed,
			Layout:      layout,
			Difficulty:  opts.difficulty,
			Level:       st.Level,
			Seconds:     st.ElapsedSeconds,
			BossBattles: st.BossBattleCount,
		}); err != nil {
			return err
		}

		outcome := "survived"
		if st.GameOver {
			outcome = "caught at"
		}
		snap := session.Snapshot()
		fmt.Fprintf(out, "run %d  seed %d  %s %s  level %d  boss battles %d  ticks %d  enemies %d  bosses %d\n",
			i+1, seed, outcome, survival.FormatClock(st.ElapsedSeconds), st.Level, st.BossBattleCount,
			snap.Tick, len(snap.Enemies), len(snap.Bosses))

		if ctx.Err() != nil {
			break
		}
	}

	return printLeaderboard(out, store)
}

func runHeadless(s *survival.Session, next pattern, seconds int) {
	limit := uint64(seconds * s.TickRate())
	for tick := uint64(0); tick < limit; tick++ {
		if s.Step(next(tick, s.TickRate())).GameOver {
			return
		}
	}
}

// runRealtime drives s through a real-time loop, redrawing the terminal on
// every frame, until the run ends or the time limit passes.
func runRealtime(ctx context.Context, out io.Writer, s *survival.Session, next pattern, seconds int) error {
	width, height := 80, 24
	if f, ok := out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = w, h
		}
	}
	screen := core.NewScreen(width, height)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(seconds)*time.Second+time.Second)
	defer cancel()

	var input core.IntentFlags
	var loop *survival.Loop
	loop = survival.NewLoop(s, &input, func(v survival.View) {
		tui.DrawView(screen, v, loop.Clock().FPS())
		fmt.Fprint(out, "\x1b[H", tui.RenderScreen(screen))
		input.Set(next(s.Snapshot().Tick, s.TickRate()))
		if v.Phase == survival.PhaseGameOver || s.Now() >= time.Duration(seconds)*time.Second {
			cancel()
		}
	}, nil)

	fmt.Fprint(out, "\x1b[2J")
	err := loop.Run(ctx)
	fmt.Fprintln(out)
	return err
}

func printLeaderboard(out io.Writer, store *storage.Store) error {
	runs, err := store.TopRuns(10)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Leaderboard")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Time", "Level", "Bosses", "Seed")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8s  %-5d  %-6d  %d\n",
			i+1, survival.FormatClock(r.Seconds), r.Level, r.BossBattles, r.Seed)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Longest Time: %s  Average: %s  Highest Level: %d\n",
		stats.Runs, survival.FormatClock(stats.Longest), survival.FormatClock(int(stats.AvgSeconds)), stats.HighestLevel)
	return nil
}
