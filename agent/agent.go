// Package agent provides ready-made controllers for playing games without a human.
package agent

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"manhunt/engine"
	"manhunt/game"
)

var ErrNoMoves = errors.New("no legal moves to choose from")

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

type Option func(r *Random)

// WithSeed makes the agent's choices reproducible.
func WithSeed(seed uint64) Option {
	return func(r *Random) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

func NewRandom(options ...Option) *Random {
	r := &Random{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Random) MakeMove(_ engine.View, _ int, moves game.MoveSet) (game.Move, error) {
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	sorted := moves.Sorted()
	return sorted[r.rng.Intn(len(sorted))], nil
}

// First always plays the first legal move in sorted order.
type First struct{}

func (First) MakeMove(_ engine.View, _ int, moves game.MoveSet) (game.Move, error) {
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}
	return moves.Sorted()[0], nil
}

// New returns the agent registered under name.
func New(name string, seed uint64) (engine.Controller, error) {
	switch name {
	case "random":
		return NewRandom(WithSeed(seed)), nil
	case "first":
		return First{}, nil
	default:
		return nil, fmt.Errorf("unknown agent %q", name)
	}
}
