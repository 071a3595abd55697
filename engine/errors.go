package engine

import "errors"

var (
	ErrNoController          = errors.New("player has no controller")
	ErrGameOver              = errors.New("game is over")
	ErrIllegalMove           = errors.New("move is not legal")
	ErrNilObserver           = errors.New("observer is nil")
	ErrObserverRegistered    = errors.New("observer is already registered")
	ErrObserverNotRegistered = errors.New("observer is not registered")
	ErrNoMoveSubmitted       = errors.New("controller did not submit a move")
	ErrMoveResubmitted       = errors.New("controller submitted more than one move")
)
