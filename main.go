package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"manhunt/config"
	"manhunt/engine"
	"manhunt/experiments"
	"manhunt/meta"
)

func main() {
	configPath := flag.String("config", "", "YAML game setup, a standard five seeker game on the built-in board otherwise")
	boardPath := flag.String("board", "", "DOT board overriding the one named in the setup")
	numGames := flag.Int("games", 0, "Number of games per matchup, 0 plays a single logged game")
	evaders := flag.String("evaders", "random", "Comma separated evader agents for the matchups")
	seekers := flag.String("seekers", "random,first", "Comma separated seeker agents for the matchups")
	out := flag.String("out", "experiments", "Directory for experiment records")
	throughput := flag.Bool("throughput", false, "Measure games per second instead of writing records")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	setup, err := loadSetup(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load setup")
	}
	if *boardPath != "" {
		setup.Board = *boardPath
	}

	switch {
	case *throughput:
		if _, err := experiments.RunThroughput(setup, gamesOr(*numGames, meta.NUM_GAMES)); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	case *numGames > 0:
		configs := experiments.Matchups(strings.Split(*evaders, ","), strings.Split(*seekers, ","))
		result, err := experiments.Run("matchups", setup, configs, *numGames)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		dir, err := experiments.Store(*out, "matchups", configs, result)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to store results")
		}
		log.Info().Msgf("stored results in %s", dir)
	default:
		if err := playGame(setup); err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
	}
}

func gamesOr(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}

func loadSetup(path string) (*config.Game, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Parse([]byte(defaultSetup))
}

// playGame plays one game and logs everything observers see.
func playGame(setup *config.Game) error {
	cfg, err := setup.Engine()
	if err != nil {
		return err
	}
	e, err := engine.New(cfg)
	if err != nil {
		return err
	}
	if err := e.RegisterObserver(engine.NewLogObserver(log.Logger)); err != nil {
		return err
	}

	over, err := e.Run(meta.MAX_ROTATIONS)
	if err != nil {
		return err
	}
	if !over {
		log.Info().Msgf("stopped after %d rotations (no winner yet)", meta.MAX_ROTATIONS)
	}
	return nil
}

const defaultSetup = `
evader: {colour: black, location: 13}
seekers:
  - {colour: blue, location: 1}
  - {colour: green, location: 6}
  - {colour: red, location: 19}
  - {colour: white, location: 24}
  - {colour: yellow, location: 10}
`
