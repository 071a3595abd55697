package game

import (
	"fmt"
	"sort"
)

// Move is one of PassMove, TicketMove or DoubleMove. All variants are comparable values so
// they can be used as map keys and compared with ==.
type Move interface {
	// Actor is the colour of the player making the move.
	Actor() Colour
	fmt.Stringer
	isMove()
}

// PassMove is played by a seeker that cannot move.
type PassMove struct {
	Colour Colour
}

// TicketMove rides one route by spending one ticket.
type TicketMove struct {
	Colour      Colour
	Ticket      Ticket
	Destination int
}

// DoubleMove plays two ticket moves as one turn. Only the evader can play it.
type DoubleMove struct {
	Colour Colour
	First  TicketMove
	Second TicketMove
}

// NewDoubleMove builds a double move for colour out of its two legs.
func NewDoubleMove(colour Colour, first Ticket, firstDestination int, second Ticket, secondDestination int) DoubleMove {
	return DoubleMove{
		Colour: colour,
		First:  TicketMove{Colour: colour, Ticket: first, Destination: firstDestination},
		Second: TicketMove{Colour: colour, Ticket: second, Destination: secondDestination},
	}
}

func (m PassMove) Actor() Colour   { return m.Colour }
func (m TicketMove) Actor() Colour { return m.Colour }
func (m DoubleMove) Actor() Colour { return m.Colour }

func (PassMove) isMove()   {}
func (TicketMove) isMove() {}
func (DoubleMove) isMove() {}

func (m PassMove) String() string {
	return fmt.Sprintf("%s pass", m.Colour)
}

func (m TicketMove) String() string {
	return fmt.Sprintf("%s %s->%d", m.Colour, m.Ticket, m.Destination)
}

func (m DoubleMove) String() string {
	return fmt.Sprintf("%s double %s->%d %s->%d", m.Colour, m.First.Ticket, m.First.Destination, m.Second.Ticket, m.Second.Destination)
}

// FinalDestination is where the evader ends up after both legs.
func (m DoubleMove) FinalDestination() int {
	return m.Second.Destination
}

// MoveSet is a set of moves.
type MoveSet map[Move]struct{}

// NewMoveSet returns a set holding moves.
func NewMoveSet(moves ...Move) MoveSet {
	set := make(MoveSet, len(moves))
	for _, m := range moves {
		set.Add(m)
	}
	return set
}

func (s MoveSet) Add(m Move) {
	s[m] = struct{}{}
}

// Contains reports whether m is in the set. A nil move is never contained.
func (s MoveSet) Contains(m Move) bool {
	if m == nil {
		return false
	}
	_, ok := s[m]
	return ok
}

// Union adds every move of other to s.
func (s MoveSet) Union(other MoveSet) {
	for m := range other {
		s.Add(m)
	}
}

// Copy returns an independent copy of the set.
func (s MoveSet) Copy() MoveSet {
	out := make(MoveSet, len(s))
	out.Union(s)
	return out
}

// Sorted returns the moves in a stable order, useful for deterministic agents and logs.
func (s MoveSet) Sorted() []Move {
	moves := make([]Move, 0, len(s))
	for m := range s {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool {
		return moveKey(moves[i]) < moveKey(moves[j])
	})
	return moves
}

// moveKey orders pass < ticket < double, then by tickets and destinations.
func moveKey(m Move) string {
	switch m := m.(type) {
	case PassMove:
		return fmt.Sprintf("0|%d", m.Colour)
	case TicketMove:
		return fmt.Sprintf("1|%d|%d|%06d", m.Colour, m.Ticket, m.Destination)
	case DoubleMove:
		return fmt.Sprintf("2|%d|%d|%06d|%d|%06d", m.Colour, m.First.Ticket, m.First.Destination, m.Second.Ticket, m.Second.Destination)
	default:
		return m.String()
	}
}
