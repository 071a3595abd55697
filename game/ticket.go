package game

import (
	"fmt"
	"strings"
)

// Ticket is the kind of ticket a player spends to make a move.
type Ticket int

const (
	Taxi Ticket = iota
	Bus
	Underground
	Double // Plays two single moves as one turn
	Secret // Rides any route without naming the transport
)

// Tickets lists every ticket kind. Every player record holds an entry for each of them.
var Tickets = []Ticket{Taxi, Bus, Underground, Double, Secret}

var ticketNames = map[Ticket]string{
	Taxi:        "taxi",
	Bus:         "bus",
	Underground: "underground",
	Double:      "double",
	Secret:      "secret",
}

func (t Ticket) String() string {
	if name, ok := ticketNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ticket(%d)", int(t))
}

// IsSpecial reports whether the ticket is not bound to a transport kind.
func (t Ticket) IsSpecial() bool {
	return t == Double || t == Secret
}

// ParseTicket returns the ticket named by s, ignoring case.
func ParseTicket(s string) (Ticket, error) {
	for t, name := range ticketNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown ticket %q", s)
}

// Transport is the kind of route an edge of the graph represents.
type Transport int

const (
	TaxiRoute Transport = iota
	BusRoute
	UndergroundRoute
	Ferry
)

var transportNames = map[Transport]string{
	TaxiRoute:        "taxi",
	BusRoute:         "bus",
	UndergroundRoute: "underground",
	Ferry:            "ferry",
}

func (t Transport) String() string {
	if name, ok := transportNames[t]; ok {
		return name
	}
	return fmt.Sprintf("transport(%d)", int(t))
}

// ParseTransport returns the transport named by s, ignoring case.
func ParseTransport(s string) (Transport, error) {
	for t, name := range transportNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown transport %q", s)
}

// TicketFor returns the ticket required to ride a route of the given transport.
// Ferries can only be taken with a secret ticket.
func TicketFor(t Transport) Ticket {
	switch t {
	case TaxiRoute:
		return Taxi
	case BusRoute:
		return Bus
	case UndergroundRoute:
		return Underground
	case Ferry:
		return Secret
	default:
		panic(fmt.Sprintf("no ticket for transport %d", int(t)))
	}
}
