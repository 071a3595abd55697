package engine

import "manhunt/game"

// Controller picks the move of one player. MakeMove blocks until a decision is made and must
// return a member of moves. location is the player's true station.
type Controller interface {
	MakeMove(view View, location int, moves game.MoveSet) (game.Move, error)
}

// ControllerFunc lets an ordinary function act as a Controller.
type ControllerFunc func(view View, location int, moves game.MoveSet) (game.Move, error)

func (f ControllerFunc) MakeMove(view View, location int, moves game.MoveSet) (game.Move, error) {
	return f(view, location, moves)
}

// CallbackController adapts a "decide and call back" player to the Controller interface.
// The function must call submit exactly once before returning.
type CallbackController func(view View, location int, moves game.MoveSet, submit func(game.Move))

func (f CallbackController) MakeMove(view View, location int, moves game.MoveSet) (game.Move, error) {
	var (
		chosen    game.Move
		submitted int
	)
	f(view, location, moves, func(m game.Move) {
		submitted++
		if submitted == 1 {
			chosen = m
		}
	})

	switch {
	case submitted == 0:
		return nil, ErrNoMoveSubmitted
	case submitted > 1:
		return nil, ErrMoveResubmitted
	}
	return chosen, nil
}
