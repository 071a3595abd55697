package metrics

import (
	"time"

	"manhunt/engine"
	"manhunt/game"
)

type MoveMetric struct {
	Step   int
	Player game.Colour
	Round  int    // Round the game was in when the move was announced
	Move   string // As observers saw it
	// Destination as observers saw it, the final one for a double move and 0 for a pass
	Destination int
}

type GameMetric struct {
	Winner     game.Side
	Winners    []game.Colour
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Rounds     int // Evader moves played
	Rotations  int
}

// Collector is an engine.Observer recording one game. Both legs of a double move are part of
// the same turn, so a double move counts as a single step.
type Collector struct {
	startTime time.Time
	endTime   time.Time
	legs      int
	rounds    int
	rotations int
	winners   []game.Colour
	winner    game.Side
	moves     []MoveMetric
}

func NewCollector() *Collector {
	return &Collector{}
}

// Start marks the beginning of the game.
func (c *Collector) Start() {
	c.startTime = time.Now()
}

func (c *Collector) OnMoveMade(view engine.View, move game.Move) {
	if c.legs > 0 {
		c.legs--
		return
	}
	if _, ok := move.(game.DoubleMove); ok {
		c.legs = 2
	}
	c.moves = append(c.moves, MoveMetric{
		Step:   len(c.moves) + 1,
		Player: move.Actor(),
		Round:  view.Round(),
		Move:   move.String(),

		Destination: destination(move),
	})
}

func destination(move game.Move) int {
	switch m := move.(type) {
	case game.TicketMove:
		return m.Destination
	case game.DoubleMove:
		return m.FinalDestination()
	default:
		return 0
	}
}

func (c *Collector) OnRoundStarted(_ engine.View, round int) {
	c.rounds = round + 1
}

func (c *Collector) OnRotationComplete(engine.View) {
	c.rotations++
}

func (c *Collector) OnGameOver(view engine.View, winners []game.Colour) {
	c.rotations++
	c.rounds = view.Round()
	c.winners = winners
	c.winner = game.SeekerSide
	if len(winners) == 1 && winners[0].IsEvader() {
		c.winner = game.EvaderSide
	}
	c.endTime = time.Now()
}

// Complete returns the game metric and the metric of every move. A game that never ended
// reports no winner and ends now.
func (c *Collector) Complete() (GameMetric, []MoveMetric) {
	end := c.endTime
	if end.IsZero() {
		end = time.Now()
	}
	return GameMetric{
		Winner:     c.winner,
		Winners:    append([]game.Colour{}, c.winners...),
		StartTime:  c.startTime,
		EndTime:    end,
		Duration:   end.Sub(c.startTime),
		TotalMoves: len(c.moves),
		Rounds:     c.rounds,
		Rotations:  c.rotations,
	}, append([]MoveMetric{}, c.moves...)
}
