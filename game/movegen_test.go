package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleMoves(t *testing.T) {
	g := newFakeGraph(
		route{1, 2, TaxiRoute},
		route{1, 3, BusRoute},
		route{1, 4, UndergroundRoute},
		route{1, 5, Ferry},
	)

	t.Run("only routes with a held ticket are available", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(1, 0, 1, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false}, Players: []*Player{evader}}

		got := p.SingleMoves(evader, 1)

		require.Equal(t, NewMoveSet(
			TicketMove{Colour: Black, Ticket: Taxi, Destination: 2},
			TicketMove{Colour: Black, Ticket: Underground, Destination: 4},
		), got, "Should only offer taxi and underground routes")
	})

	t.Run("secret tickets substitute for any transport including ferries", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(1, 0, 0, 0, 1))
		p := Position{Graph: g, Schedule: Schedule{false}, Players: []*Player{evader}}

		got := p.SingleMoves(evader, 1)

		require.Equal(t, NewMoveSet(
			TicketMove{Colour: Black, Ticket: Taxi, Destination: 2},
			TicketMove{Colour: Black, Ticket: Secret, Destination: 2},
			TicketMove{Colour: Black, Ticket: Secret, Destination: 3},
			TicketMove{Colour: Black, Ticket: Secret, Destination: 4},
			TicketMove{Colour: Black, Ticket: Secret, Destination: 5},
		), got)
	})

	t.Run("destinations held by another seeker are excluded", func(t *testing.T) {
		red := NewPlayer(Red, 1, tickets(5, 5, 5, 0, 0))
		blue := NewPlayer(Blue, 2, tickets(5, 5, 5, 0, 0))
		evader := NewPlayer(Black, 3, tickets(5, 5, 5, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false}, Players: []*Player{evader, red, blue}}

		got := p.SingleMoves(red, 1)

		require.NotContains(t, got, TicketMove{Colour: Red, Ticket: Taxi, Destination: 2},
			"Seekers cannot share a station")
		require.Contains(t, got, TicketMove{Colour: Red, Ticket: Bus, Destination: 3},
			"Seekers may move onto the evader")
	})

	t.Run("the evader is blocked by seekers too", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(5, 5, 5, 0, 0))
		blue := NewPlayer(Blue, 2, tickets(5, 5, 5, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false}, Players: []*Player{evader, blue}}

		got := p.SingleMoves(evader, 1)

		require.NotContains(t, got, TicketMove{Colour: Black, Ticket: Taxi, Destination: 2})
		require.Len(t, got, 2)
	})

	t.Run("no qualifying route returns an empty set", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(0, 0, 0, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false}, Players: []*Player{evader}}

		got := p.SingleMoves(evader, 1)

		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("every move uses a held ticket and avoids other seekers", func(t *testing.T) {
		evader := NewPlayer(Black, 2, tickets(2, 1, 0, 1, 1))
		red := NewPlayer(Red, 1, tickets(3, 0, 1, 0, 0))
		green := NewPlayer(Green, 4, tickets(1, 1, 1, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false, false}, Players: []*Player{evader, red, green}}

		for _, player := range p.Players {
			for m := range p.SingleMoves(player, player.Location) {
				move := m.(TicketMove)
				require.True(t, player.Has(move.Ticket, 1), "%s should hold a ticket for %s", player.Colour, move)
				for _, other := range p.Seekers() {
					if other != player {
						require.NotEqual(t, other.Location, move.Destination, "%s should not land on %s", move, other.Colour)
					}
				}
			}
		}
	})
}

func TestDoubleMoves(t *testing.T) {
	g := newFakeGraph(
		route{1, 2, TaxiRoute},
		route{2, 3, TaxiRoute},
		route{2, 4, BusRoute},
	)

	t.Run("same ticket on both legs requires two of them", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(1, 1, 0, 1, 0))
		p := Position{Graph: g, Schedule: Schedule{false, false, false}, Players: []*Player{evader}}

		got := p.DoubleMoves(evader, p.SingleMoves(evader, 1))

		require.Equal(t, NewMoveSet(
			NewDoubleMove(Black, Taxi, 2, Bus, 4),
		), got, "Only the taxi-bus double should be possible with one taxi ticket")
	})

	t.Run("two tickets of the same kind allow both legs", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(2, 0, 0, 1, 0))
		p := Position{Graph: g, Schedule: Schedule{false, false, false}, Players: []*Player{evader}}

		got := p.DoubleMoves(evader, p.SingleMoves(evader, 1))

		require.Equal(t, NewMoveSet(
			NewDoubleMove(Black, Taxi, 2, Taxi, 1),
			NewDoubleMove(Black, Taxi, 2, Taxi, 3),
		), got)
	})

	t.Run("no double ticket means no double moves", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(2, 2, 0, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false, false, false}, Players: []*Player{evader}}

		require.Empty(t, p.DoubleMoves(evader, p.SingleMoves(evader, 1)))
	})

	t.Run("no double moves in the final round", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(2, 2, 0, 1, 0))
		p := Position{Graph: g, Schedule: Schedule{false, false, false}, Players: []*Player{evader}, Round: 2}

		require.Empty(t, p.DoubleMoves(evader, p.SingleMoves(evader, 1)))

		p.Round = 1
		require.NotEmpty(t, p.DoubleMoves(evader, p.SingleMoves(evader, 1)),
			"Double moves are allowed before the final round")
	})
}

func TestLegalMoves(t *testing.T) {
	g := newFakeGraph(
		route{1, 2, TaxiRoute},
		route{2, 3, TaxiRoute},
	)

	t.Run("seeker without moves passes", func(t *testing.T) {
		evader := NewPlayer(Black, 3, tickets(1, 0, 0, 0, 0))
		blue := NewPlayer(Blue, 1, tickets(0, 4, 0, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false}, Players: []*Player{evader, blue}}

		require.Equal(t, NewMoveSet(PassMove{Colour: Blue}), p.LegalMoves(blue))
	})

	t.Run("evader without moves gets an empty set", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(0, 4, 0, 1, 0))
		blue := NewPlayer(Blue, 3, tickets(1, 0, 0, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false, false}, Players: []*Player{evader, blue}}

		require.Empty(t, p.LegalMoves(evader))
	})

	t.Run("evader moves include single and double moves", func(t *testing.T) {
		evader := NewPlayer(Black, 1, tickets(2, 0, 0, 1, 0))
		blue := NewPlayer(Blue, 5, tickets(1, 0, 0, 0, 0))
		p := Position{Graph: g, Schedule: Schedule{false, false}, Players: []*Player{evader, blue}}

		require.Equal(t, NewMoveSet(
			TicketMove{Colour: Black, Ticket: Taxi, Destination: 2},
			NewDoubleMove(Black, Taxi, 2, Taxi, 1),
			NewDoubleMove(Black, Taxi, 2, Taxi, 3),
		), p.LegalMoves(evader))
	})

	t.Run("seekers never get double moves", func(t *testing.T) {
		evader := NewPlayer(Black, 3, tickets(1, 0, 0, 0, 0))
		blue := NewPlayer(Blue, 1, tickets(2, 0, 0, 0, 0))
		// A seeker configured with a double ticket would still only move once.
		blue.Tickets[Double] = 1
		p := Position{Graph: g, Schedule: Schedule{false, false}, Players: []*Player{evader, blue}}

		require.Equal(t, NewMoveSet(TicketMove{Colour: Blue, Ticket: Taxi, Destination: 2}), p.LegalMoves(blue))
	})
}

func TestMoveSetSorted(t *testing.T) {
	set := NewMoveSet(
		NewDoubleMove(Black, Taxi, 2, Bus, 3),
		TicketMove{Colour: Black, Ticket: Bus, Destination: 10},
		TicketMove{Colour: Black, Ticket: Taxi, Destination: 9},
		PassMove{Colour: Black},
	)

	require.Equal(t, []Move{
		PassMove{Colour: Black},
		TicketMove{Colour: Black, Ticket: Taxi, Destination: 9},
		TicketMove{Colour: Black, Ticket: Bus, Destination: 10},
		NewDoubleMove(Black, Taxi, 2, Bus, 3),
	}, set.Sorted())
	require.False(t, set.Contains(nil), "A nil move is never legal")
}
