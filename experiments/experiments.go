// Package experiments plays many games between agents and stores the results.
package experiments

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"manhunt/config"
	"manhunt/engine"
	"manhunt/experiments/metrics"
	"manhunt/meta"
)

// Matchups pairs every evader agent with every seeker agent.
func Matchups(evaders, seekers []string) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for _, e := range evaders {
		for _, s := range seekers {
			configs = append(configs, metrics.AgentConfig{ID: len(configs) + 1, Evader: e, Seeker: s})
		}
	}
	return configs
}

// Result holds every record of an experiment.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays numGames games per matchup on the given setup. Games still running after
// meta.MAX_ROTATIONS rotations are recorded without a winner.
func Run(name string, setup *config.Game, configs []metrics.AgentConfig, numGames int) (Result, error) {
	result := Result{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range configs {
		log.Info().Msgf("starting matchup %d of %d between evader=%s and seekers=%s...", mi+1, len(configs), matchup.Evader, matchup.Seeker)

		for i := 0; i < numGames; i++ {
			id := uuid.NewString()
			seed := setup.Seed + uint64(mi*numGames+i)*uint64(len(setup.Seekers)+1)
			gameMetric, moveMetrics, err := runGame(setup, matchup, seed)
			if err != nil {
				return result, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         id,
				Config:     matchup.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(configs), i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)
	return result, nil
}

// Store writes the agent configs and the records under dir.
func Store(dir, name string, configs []metrics.AgentConfig, result Result) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays a single game and returns its metrics
func runGame(setup *config.Game, matchup metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	g := *setup
	g.Seed = seed
	g.Evader.Agent = matchup.Evader
	g.Seekers = make([]config.Player, len(setup.Seekers))
	for i, s := range setup.Seekers {
		s.Agent = matchup.Seeker
		g.Seekers[i] = s
	}

	cfg, err := g.Engine()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	e, err := engine.New(cfg)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	collector := metrics.NewCollector()
	if err := e.RegisterObserver(collector); err != nil {
		return metrics.GameMetric{}, nil, err
	}
	collector.Start()
	if _, err := e.Run(meta.MAX_ROTATIONS); err != nil {
		return metrics.GameMetric{}, nil, err
	}

	gameMetric, moveMetrics := collector.Complete()
	return gameMetric, moveMetrics, nil
}
