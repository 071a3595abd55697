package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSetup() Setup {
	return Setup{
		Schedule: Schedule{false, false, true},
		Graph: newFakeGraph(
			route{1, 2, TaxiRoute},
			route{2, 3, BusRoute},
			route{3, 4, UndergroundRoute},
		),
		Evader: PlayerConfig{Colour: Black, Location: 1, Tickets: tickets(4, 3, 3, 2, 5)},
		Seekers: []PlayerConfig{
			{Colour: Red, Location: 3, Tickets: tickets(10, 8, 4, 0, 0)},
			{Colour: Blue, Location: 4, Tickets: tickets(10, 8, 4, 0, 0)},
		},
	}
}

func TestSetupValidate(t *testing.T) {
	t.Run("accepts a valid setup", func(t *testing.T) {
		require.NoError(t, validSetup().Validate())
	})

	tests := []struct {
		name   string
		modify func(s *Setup)
		want   error
	}{
		{"empty schedule", func(s *Setup) { s.Schedule = Schedule{} }, ErrEmptySchedule},
		{"nil graph", func(s *Setup) { s.Graph = nil }, ErrEmptyGraph},
		{"empty graph", func(s *Setup) { s.Graph = fakeGraph{} }, ErrEmptyGraph},
		{"no seekers", func(s *Setup) { s.Seekers = nil }, ErrNoSeekers},
		{"evader as seeker colour", func(s *Setup) { s.Evader.Colour = Green }, ErrEvaderColour},
		{"seeker as black", func(s *Setup) { s.Seekers[0].Colour = Black }, ErrSeekerColour},
		{"duplicate colour", func(s *Setup) { s.Seekers[1].Colour = Red }, ErrDuplicateColour},
		{"duplicate location", func(s *Setup) { s.Seekers[1].Location = 1 }, ErrDuplicateLocation},
		{"location off the graph", func(s *Setup) { s.Seekers[1].Location = 99 }, ErrUnknownLocation},
		{"missing ticket entry", func(s *Setup) { delete(s.Evader.Tickets, Secret) }, ErrMissingTicket},
		{"negative tickets", func(s *Setup) { s.Seekers[0].Tickets[Taxi] = -1 }, ErrNegativeTickets},
		{"seeker with a double ticket", func(s *Setup) { s.Seekers[0].Tickets[Double] = 1 }, ErrForbiddenTicket},
		{"seeker with a secret ticket", func(s *Setup) { s.Seekers[1].Tickets[Secret] = 2 }, ErrForbiddenTicket},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			s := validSetup()
			tt.modify(&s)

			err := s.Validate()

			require.Error(t, err)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("reports every problem at once", func(t *testing.T) {
		s := validSetup()
		s.Schedule = nil
		s.Seekers[0].Tickets[Secret] = 1

		err := s.Validate()

		require.ErrorIs(t, err, ErrEmptySchedule)
		require.ErrorIs(t, err, ErrForbiddenTicket)
	})
}

func TestTicketFor(t *testing.T) {
	require.Equal(t, Taxi, TicketFor(TaxiRoute))
	require.Equal(t, Bus, TicketFor(BusRoute))
	require.Equal(t, Underground, TicketFor(UndergroundRoute))
	require.Equal(t, Secret, TicketFor(Ferry), "Ferries need a secret ticket")
}

func TestParseNames(t *testing.T) {
	ticket, err := ParseTicket("Underground")
	require.NoError(t, err)
	require.Equal(t, Underground, ticket)

	transport, err := ParseTransport("ferry")
	require.NoError(t, err)
	require.Equal(t, Ferry, transport)

	colour, err := ParseColour("YELLOW")
	require.NoError(t, err)
	require.Equal(t, Yellow, colour)

	_, err = ParseTicket("rickshaw")
	require.Error(t, err)
}
