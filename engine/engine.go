// Package engine runs a game: it asks each player's controller for a move, applies it and
// reports what observers are allowed to know.
package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"manhunt/game"
)

// PlayerConfig is a starting record plus the controller choosing the player's moves.
type PlayerConfig struct {
	game.PlayerConfig
	Controller Controller
}

type Config struct {
	Schedule game.Schedule
	Graph    game.Graph
	Evader   PlayerConfig
	Seekers  []PlayerConfig
}

// Setup strips the controllers off the configuration.
func (c Config) Setup() game.Setup {
	seekers := make([]game.PlayerConfig, len(c.Seekers))
	for i, s := range c.Seekers {
		seekers[i] = s.PlayerConfig
	}
	return game.Setup{Schedule: c.Schedule, Graph: c.Graph, Evader: c.Evader.PlayerConfig, Seekers: seekers}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	errs := c.Setup().Validate()
	for _, p := range append([]PlayerConfig{c.Evader}, c.Seekers...) {
		if p.Controller == nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", p.Colour, ErrNoController))
		}
	}
	return errs
}

type Option func(e *Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine owns the state of one game. It is not safe for concurrent use: an embedding that
// shares it between goroutines must serialize every call.
type Engine struct {
	logger      zerolog.Logger
	schedule    game.Schedule
	graph       game.Graph
	players     []*game.Player // Evader first, then seekers in turn order
	controllers []Controller
	observers   []Observer

	current      int // Index into players of whoever moves next
	round        int
	rotationDone bool
	disclosed    int // Last evader location shown to observers, 0 if never
	moves        game.MoveSet
	outcome      game.Outcome
}

// New validates cfg and returns an engine waiting for the evader's first move.
func New(cfg Config, options ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		logger:   log.Logger,
		schedule: cfg.Schedule.Copy(),
		graph:    cfg.Graph,
		round:    game.NotStarted,
	}
	for _, option := range options {
		option(e)
	}
	e.logger = e.logger.With().Str("component", "engine").Logger()
	for _, p := range append([]PlayerConfig{cfg.Evader}, cfg.Seekers...) {
		e.players = append(e.players, game.NewPlayer(p.Colour, p.Location, p.Tickets))
		e.controllers = append(e.controllers, p.Controller)
	}
	e.update()
	return e, nil
}

// StartTurn plays one rotation: it asks every player in turn for a move, starting with the
// current one, until play comes back to the evader. Observers then learn that the rotation
// is complete, or that the game is over.
func (e *Engine) StartTurn() error {
	if e.outcome.Over() {
		return ErrGameOver
	}
	for {
		player := e.players[e.current]
		move, err := e.controllers[e.current].MakeMove(e.View(), player.Location, e.moves.Copy())
		if err != nil {
			return fmt.Errorf("%s: %w", player.Colour, err)
		}
		if err := e.accept(move); err != nil {
			return err
		}
		if !e.rotationDone {
			continue
		}

		if e.outcome.Over() {
			e.logger.Info().Msgf("game over in round %d, winners: %v", e.round, e.outcome.Winners)
			e.notifyGameOver()
		} else {
			e.logger.Debug().Msgf("rotation complete in round %d", e.round)
			e.notifyRotation()
		}
		return nil
	}
}

// Run plays rotations until the game is over or maxRotations have been played. It reports
// whether the game finished.
func (e *Engine) Run(maxRotations int) (bool, error) {
	for i := 0; i < maxRotations && !e.outcome.Over(); i++ {
		if err := e.StartTurn(); err != nil {
			return false, err
		}
	}
	return e.outcome.Over(), nil
}

func (e *Engine) accept(move game.Move) error {
	if !e.moves.Contains(move) {
		return fmt.Errorf("%v: %w", move, ErrIllegalMove)
	}
	player := e.players[e.current]
	e.logger.Debug().Msgf("%s plays %s", player.Colour, move)

	switch m := move.(type) {
	case game.PassMove:
		e.notifyMove(m)
	case game.TicketMove:
		if player.IsEvader() {
			e.moveEvader(player, m, e.visibility().Single(m))
		} else {
			e.moveSeeker(player, m)
		}
	case game.DoubleMove:
		shown := e.visibility().Double(m)
		player.RemoveTicket(game.Double)
		e.notifyMove(shown)
		e.moveEvader(player, m.First, shown.First)
		e.moveEvaderSilently(player, m.Second, shown.Second)
	default:
		panic(fmt.Sprintf("unknown move type %T", move))
	}

	e.current = (e.current + 1) % len(e.players)
	e.rotationDone = e.current == 0
	e.update()
	return nil
}

func (e *Engine) moveSeeker(seeker *game.Player, m game.TicketMove) {
	seeker.RemoveTicket(m.Ticket)
	seeker.Location = m.Destination
	e.players[0].AddTicket(m.Ticket)
	e.notifyMove(m)
}

// moveEvader plays one evader leg and announces it followed by the round it was played in.
func (e *Engine) moveEvader(evader *game.Player, m, shown game.TicketMove) {
	round := e.round
	e.moveEvaderSilently(evader, m, shown)
	e.notifyRound(round)
}

// moveEvaderSilently plays one evader leg without a round event.
func (e *Engine) moveEvaderSilently(evader *game.Player, m, shown game.TicketMove) {
	evader.RemoveTicket(m.Ticket)
	evader.Location = m.Destination
	e.disclosed = e.visibility().Disclose(m.Destination)
	e.round++
	e.notifyMove(shown)
}

func (e *Engine) visibility() game.Visibility {
	return game.Visibility{Schedule: e.schedule, Round: e.round, Disclosed: e.disclosed}
}

func (e *Engine) position() game.Position {
	return game.Position{
		Graph:         e.graph,
		Schedule:      e.schedule,
		Players:       e.players,
		Round:         e.round,
		RoundFinished: e.rotationDone,
	}
}

// update recomputes the outcome and the moves available to the current player. Every query
// reads these cached values so they always agree.
func (e *Engine) update() {
	p := e.position()
	e.outcome = game.Evaluate(p)
	e.moves = p.LegalMoves(e.players[e.current])
}

// ValidMoves returns the moves the current player may make.
func (e *Engine) ValidMoves() game.MoveSet {
	return e.moves.Copy()
}

func (e *Engine) IsGameOver() bool {
	return e.outcome.Over()
}

// Winners returns the winning colours, empty while the game goes on.
func (e *Engine) Winners() []game.Colour {
	return append([]game.Colour{}, e.outcome.Winners...)
}

func (e *Engine) Outcome() game.Outcome {
	return game.Outcome{Winner: e.outcome.Winner, Winners: e.Winners()}
}

func (e *Engine) CurrentPlayer() game.Colour {
	return e.players[e.current].Colour
}

// Round is the index of the evader's next move.
func (e *Engine) Round() int {
	return e.round
}
