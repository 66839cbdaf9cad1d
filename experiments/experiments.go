package experiments

import (
	"fmt"

	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
)

// Summary counts the results of one match up from the first agent's side.
type Summary struct {
	First  metrics.AgentConfig
	Second metrics.AgentConfig
	Wins   int
	Losses int
	Draws  int // turn limit reached
}

// Results is everything a depth experiment produced.
type Results struct {
	Agents    []metrics.AgentConfig
	Summaries []Summary
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

// agentConfigs resolves every difficulty named by the match ups, giving each
// distinct one an id.
func agentConfigs(cfg meta.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig, error) {
	byName := map[string]metrics.AgentConfig{}
	var configs []metrics.AgentConfig
	resolve := func(name string) (metrics.AgentConfig, error) {
		if config, ok := byName[name]; ok {
			return config, nil
		}
		depth, err := cfg.Depth(name)
		if err != nil {
			return metrics.AgentConfig{}, err
		}
		config := metrics.AgentConfig{
			ID:         len(configs) + 1,
			Name:       name,
			Depth:      depth,
			Goroutines: max(cfg.Goroutines, 1),
		}
		byName[name] = config
		configs = append(configs, config)
		return config, nil
	}

	matchUps := make([][2]metrics.AgentConfig, 0, len(cfg.Experiment.MatchUps))
	for _, m := range cfg.Experiment.MatchUps {
		first, err := resolve(m.First)
		if err != nil {
			return nil, nil, err
		}
		second, err := resolve(m.Second)
		if err != nil {
			return nil, nil, err
		}
		matchUps = append(matchUps, [2]metrics.AgentConfig{first, second})
	}
	return configs, matchUps, nil
}

// RunDepthExperiment plays every configured match up between two search
// depths. Within a match up the agents swap colors every game.
func RunDepthExperiment(cfg meta.Config) (Results, error) {
	configs, matchUps, err := agentConfigs(cfg)
	if err != nil {
		return Results{}, err
	}
	results := Results{Agents: configs}
	games := cfg.Experiment.Games

	log.Info().Msgf("starting %s experiment...", cfg.Experiment.Name)

	for mi, matchUp := range matchUps {
		first, second := matchUp[0], matchUp[1]
		summary := Summary{First: first, Second: second}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), first, second)

		for i := 0; i < games; i++ {
			dark, light := first, second
			firstColor := "dark"
			if i%2 == 1 {
				dark, light = second, first
				firstColor = "light"
			}

			winner, gameMetric, moveMetrics := runGame(dark, light)
			record := metrics.GameRecord{
				ID:         len(results.Games) + 1,
				Dark:       dark.ID,
				Light:      light.ID,
				GameMetric: gameMetric,
			}
			results.Games = append(results.Games, record)
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       record.ID,
					MoveMetric: mm,
				})
			}

			switch winner {
			case "":
				summary.Draws++
			case firstColor:
				summary.Wins++
			default:
				summary.Losses++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}

		results.Summaries = append(results.Summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: %s won %d, lost %d, %d undecided",
			mi+1, len(matchUps), first.Name, summary.Wins, summary.Losses, summary.Draws)
	}

	log.Info().Msgf("completed %s experiment", cfg.Experiment.Name)
	return results, nil
}

// Store writes the results below the configured output directory and returns
// the directory used.
func Store(cfg meta.Config, results Results) (string, error) {
	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, cfg.Experiment.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(results.Agents); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", err
	}
	log.Info().Msgf("stored experiment results in %s", writer.Dir())
	return writer.Dir(), nil
}

func newAgent(config metrics.AgentConfig) agent.Agent {
	return agent.NewMinimaxAgent(searcher.NewMinimax(
		searcher.WithDepth(config.Depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	))
}

// runGame executes a single game between two agents and returns the winner
func runGame(dark, light metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(newAgent(dark), newAgent(light))
	return e.Run()
}
