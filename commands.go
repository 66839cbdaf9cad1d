package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"checkers/agent"
	"checkers/engine"
	"checkers/experiments"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/player"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds what every command shares once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	cfg        meta.Config
}

func (a *app) setup(out io.Writer) error {
	a.cfg = meta.Default()
	if a.configPath != "" {
		cfg, err := meta.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}

	level, err := zerolog.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly})
	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "checkers",
		Short:         "Play checkers against a minimax opponent",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newPlayCommand(a),
		newSelfPlayCommand(a),
		newExperimentCommand(a),
		newThroughputCommand(a),
		newRulesCommand(),
	)
	return root
}

func newPlayCommand(a *app) *cobra.Command {
	var difficulty, color string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the computer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if difficulty == "" {
				difficulty = a.cfg.Difficulty
			}
			if color == "" {
				color = a.cfg.HumanColor
			}
			depth, err := a.cfg.Depth(difficulty)
			if err != nil {
				return err
			}
			human, err := game.ParseColor(color)
			if err != nil {
				return err
			}

			session := gamemaster.NewManager(a.cfg.Goroutines).NewSession(depth, human)
			return player.NewConsole(session, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium, hard, inhuman or a search depth")
	cmd.Flags().StringVar(&color, "color", "", "the color you play (dark moves first)")
	return cmd
}

// newAgent builds an agent from a difficulty, or the random mover for "random".
func newAgent(cfg meta.Config, difficulty string, seed uint64) (agent.Agent, error) {
	if strings.EqualFold(difficulty, "random") {
		return agent.NewRandomAgent(seed), nil
	}
	depth, err := cfg.Depth(difficulty)
	if err != nil {
		return nil, err
	}
	return agent.NewMinimaxAgent(searcher.NewMinimax(
		searcher.WithDepth(depth),
		searcher.WithGoroutines(max(cfg.Goroutines, 1)),
		searcher.WithMetrics(),
	)), nil
}

func newSelfPlayCommand(a *app) *cobra.Command {
	var dark, light string
	var seed uint64
	var maxTurns int
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let two computer players play each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			darkAgent, err := newAgent(a.cfg, dark, seed)
			if err != nil {
				return err
			}
			lightAgent, err := newAgent(a.cfg, light, seed+1)
			if err != nil {
				return err
			}

			e := engine.LocalEngine(darkAgent, lightAgent)
			e.MaxTurns = maxTurns
			winner, gameMetric, _ := e.Run()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, player.Render(e.Game.Board()))
			if winner == "" {
				winner = "nobody"
			}
			fmt.Fprintf(out, "winner: %s after %d turns in %s\n", winner, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&dark, "dark", "easy", "difficulty of the dark player, or random")
	cmd.Flags().StringVar(&light, "light", "easy", "difficulty of the light player, or random")
	cmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "seed for random players")
	cmd.Flags().IntVar(&maxTurns, "max-turns", meta.MAX_TURNS, "stop the game after this many turns")
	return cmd
}

func newExperimentCommand(a *app) *cobra.Command {
	var games int
	var outputDir string
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play the configured depth match ups and store the results as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if games > 0 {
				a.cfg.Experiment.Games = games
			}
			if outputDir != "" {
				a.cfg.Experiment.OutputDir = outputDir
			}

			results, err := experiments.RunDepthExperiment(a.cfg)
			if err != nil {
				return err
			}
			dir, err := experiments.Store(a.cfg, results)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range results.Summaries {
				fmt.Fprintf(out, "%s vs %s: %d won, %d lost, %d undecided\n",
					s.First.Name, s.Second.Name, s.Wins, s.Losses, s.Draws)
			}
			fmt.Fprintf(out, "results stored in %s\n", dir)
			return nil
		},
	}
	cmd.Flags().IntVar(&games, "games", 0, "games per match up (overrides the config)")
	cmd.Flags().StringVar(&outputDir, "output", "", "output directory (overrides the config)")
	return cmd
}

func newThroughputCommand(a *app) *cobra.Command {
	var difficulty, outputDir string
	var goroutines []int
	cmd := &cobra.Command{
		Use:   "throughput",
		Short: "Measure search throughput on the opening position",
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := a.cfg.Depth(difficulty)
			if err != nil {
				return err
			}
			results := experiments.RunThroughputExperiment(depth, goroutines)
			if outputDir == "" {
				return nil
			}

			writer, err := metrics.NewWriter(outputDir, "throughput")
			if err != nil {
				return err
			}
			if err := writer.WriteSearchMetrics(results); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "results stored in %s\n", writer.Dir())
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "tier name or search depth")
	cmd.Flags().IntSliceVar(&goroutines, "goroutines", []int{1, 2, 4, 8}, "goroutine counts to compare")
	cmd.Flags().StringVar(&outputDir, "output", "", "directory for the CSV results")
	return cmd
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rules",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), game.RulesText)
		},
	}
}

