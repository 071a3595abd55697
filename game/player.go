package game

import "manhunt/utils"

// Player is the mutable record of one participant: who they are, where they stand and the
// tickets they still hold. Only the turn engine mutates it once the game has started.
type Player struct {
	Colour   Colour
	Location int
	Tickets  map[Ticket]int
}

// NewPlayer returns a player record owning a copy of tickets.
func NewPlayer(colour Colour, location int, tickets map[Ticket]int) *Player {
	p := &Player{
		Colour:   colour,
		Location: location,
		Tickets:  make(map[Ticket]int, len(Tickets)),
	}
	for t, n := range tickets {
		p.Tickets[t] = n
	}
	return p
}

func (p *Player) IsEvader() bool { return p.Colour.IsEvader() }

func (p *Player) IsSeeker() bool { return p.Colour.IsSeeker() }

// Has reports whether the player holds at least n tickets of kind t.
func (p *Player) Has(t Ticket, n int) bool {
	return p.Tickets[t] >= n
}

func (p *Player) AddTicket(t Ticket) {
	p.Tickets[t]++
}

// RemoveTicket spends one ticket of kind t.
func (p *Player) RemoveTicket(t Ticket) {
	if p.Tickets[t] <= 0 {
		panic("cannot remove ticket " + t.String() + " from " + p.Colour.String() + ": none left")
	}
	p.Tickets[t]--
}

// TotalTickets sums the player's tickets across every kind.
func (p *Player) TotalTickets() int {
	return utils.Sum(p.Tickets)
}

// Copy returns a deep copy of the record.
func (p *Player) Copy() *Player {
	return NewPlayer(p.Colour, p.Location, p.Tickets)
}
