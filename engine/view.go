package engine

import "manhunt/game"

// View is a read-only snapshot of a game handed to controllers and observers. It reports the
// evader at its last disclosed location, 0 if it was never disclosed.
type View struct {
	players   []*game.Player
	current   game.Colour
	round     int
	schedule  game.Schedule
	graph     game.Graph
	disclosed int
	outcome   game.Outcome
}

func (e *Engine) View() View {
	players := make([]*game.Player, len(e.players))
	for i, p := range e.players {
		players[i] = p.Copy()
	}
	return View{
		players:   players,
		current:   e.players[e.current].Colour,
		round:     e.round,
		schedule:  e.schedule,
		graph:     e.graph,
		disclosed: e.disclosed,
		outcome:   e.outcome,
	}
}

// Players returns the colours in turn order, evader first.
func (v View) Players() []game.Colour {
	colours := make([]game.Colour, len(v.players))
	for i, p := range v.players {
		colours[i] = p.Colour
	}
	return colours
}

func (v View) CurrentPlayer() game.Colour { return v.current }

// Round is the index of the evader's next move.
func (v View) Round() int { return v.round }

func (v View) Schedule() game.Schedule { return v.schedule.Copy() }

func (v View) Graph() game.Graph { return v.graph }

// IsRevealRound reports whether the evader's next move will be disclosed.
func (v View) IsRevealRound() bool { return v.schedule.IsReveal(v.round) }

// Location returns where colour stands as far as observers know.
func (v View) Location(colour game.Colour) (int, bool) {
	p := v.player(colour)
	if p == nil {
		return 0, false
	}
	if p.IsEvader() {
		return v.disclosed, true
	}
	return p.Location, true
}

// Tickets returns how many tickets of kind t colour holds.
func (v View) Tickets(colour game.Colour, t game.Ticket) (int, bool) {
	p := v.player(colour)
	if p == nil {
		return 0, false
	}
	return p.Tickets[t], true
}

func (v View) IsGameOver() bool { return v.outcome.Over() }

// Winners returns the winning colours, empty while the game goes on.
func (v View) Winners() []game.Colour {
	return append([]game.Colour{}, v.outcome.Winners...)
}

func (v View) player(colour game.Colour) *game.Player {
	for _, p := range v.players {
		if p.Colour == colour {
			return p
		}
	}
	return nil
}
