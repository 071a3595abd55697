package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"manhunt/config"
	"manhunt/experiments/metrics"
)

// RunThroughput plays numGames games between random agents and returns how many games per
// second the engine completed.
func RunThroughput(setup *config.Game, numGames int) (float64, error) {
	configs := []metrics.AgentConfig{{ID: 1, Evader: "random", Seeker: "random"}}

	log.Info().Msgf("starting throughput experiment with %d games...", numGames)
	start := time.Now()
	result, err := Run("throughput", setup, configs, numGames)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	moves := 0
	for _, g := range result.Games {
		moves += g.TotalMoves
	}
	throughput := float64(len(result.Games)) / elapsed.Seconds()
	log.Info().Msgf("completed %d games (%d moves) in %s: %.1f games/s", len(result.Games), moves, elapsed, throughput)
	return throughput, nil
}
