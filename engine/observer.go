package engine

import (
	"github.com/rs/zerolog"

	"manhunt/game"
	"manhunt/utils"
)

// Observer receives the public event stream of a game. Evader moves arrive filtered by the
// round schedule; every other fact is reported as it happened.
type Observer interface {
	OnMoveMade(view View, move game.Move)
	// OnRoundStarted reports the index of the round the evader just played.
	OnRoundStarted(view View, round int)
	OnRotationComplete(view View)
	OnGameOver(view View, winners []game.Colour)
}

// NopObserver ignores every event. Embed it to implement only some of Observer.
type NopObserver struct{}

func (NopObserver) OnMoveMade(View, game.Move)     {}
func (NopObserver) OnRoundStarted(View, int)       {}
func (NopObserver) OnRotationComplete(View)        {}
func (NopObserver) OnGameOver(View, []game.Colour) {}

// RegisterObserver adds o to the observers notified of every event. Observers are compared
// with ==, so register pointers.
func (e *Engine) RegisterObserver(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}
	if utils.FindIndex(e.observers, o) >= 0 {
		return ErrObserverRegistered
	}
	e.observers = append(e.observers, o)
	return nil
}

func (e *Engine) UnregisterObserver(o Observer) error {
	i := utils.FindIndex(e.observers, o)
	if o == nil || i < 0 {
		return ErrObserverNotRegistered
	}
	e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
	return nil
}

// Observers returns the registered observers in registration order.
func (e *Engine) Observers() []Observer {
	return append([]Observer{}, e.observers...)
}

func (e *Engine) notifyMove(move game.Move) {
	view := e.View()
	for _, o := range e.observers {
		o.OnMoveMade(view, move)
	}
}

func (e *Engine) notifyRound(round int) {
	view := e.View()
	for _, o := range e.observers {
		o.OnRoundStarted(view, round)
	}
}

func (e *Engine) notifyRotation() {
	view := e.View()
	for _, o := range e.observers {
		o.OnRotationComplete(view)
	}
}

func (e *Engine) notifyGameOver() {
	view := e.View()
	for _, o := range e.observers {
		o.OnGameOver(view, view.Winners())
	}
}

// LogObserver writes the public event stream to a logger.
type LogObserver struct {
	Logger zerolog.Logger
}

func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{Logger: logger}
}

func (l *LogObserver) OnMoveMade(view View, move game.Move) {
	l.Logger.Info().Int("round", view.Round()).Msgf("move %s", move)
}

func (l *LogObserver) OnRoundStarted(view View, round int) {
	l.Logger.Info().Bool("reveal", view.Schedule().IsReveal(round)).Msgf("round %d played", round)
}

func (l *LogObserver) OnRotationComplete(view View) {
	l.Logger.Info().Int("round", view.Round()).Bool("reveal_next", view.IsRevealRound()).Msg("rotation complete")
}

func (l *LogObserver) OnGameOver(view View, winners []game.Colour) {
	l.Logger.Info().Msgf("game over after round %d, winners: %v", view.Round(), winners)
}
