package game

// SingleMoves returns the ticket moves player can make from the given station. A route is
// available when the player holds its ticket (or a secret ticket) and no other seeker stands
// on its destination.
func (p Position) SingleMoves(player *Player, from int) MoveSet {
	moves := MoveSet{}
	for _, edge := range p.Graph.EdgesFrom(from) {
		if p.occupiedByOtherSeeker(player, edge.Destination) {
			continue
		}
		ticket := TicketFor(edge.Transport)
		if player.Has(ticket, 1) {
			moves.Add(TicketMove{Colour: player.Colour, Ticket: ticket, Destination: edge.Destination})
		}
		if player.Has(Secret, 1) {
			moves.Add(TicketMove{Colour: player.Colour, Ticket: Secret, Destination: edge.Destination})
		}
	}
	return moves
}

func (p Position) occupiedByOtherSeeker(player *Player, station int) bool {
	for _, other := range p.Players {
		if other.IsSeeker() && other.Colour != player.Colour && other.Location == station {
			return true
		}
	}
	return false
}

// DoubleMoves pairs every first leg with the ticket moves available from its destination.
// Ticket counts are checked against the current inventory: both legs are committed together.
// No double move can start in the final round.
func (p Position) DoubleMoves(player *Player, firstMoves MoveSet) MoveSet {
	moves := MoveSet{}
	if !player.Has(Double, 1) || p.Round >= p.Schedule.LastRound() {
		return moves
	}

	for m := range firstMoves {
		first, ok := m.(TicketMove)
		if !ok {
			continue
		}
		for n := range p.SingleMoves(player, first.Destination) {
			second := n.(TicketMove)
			if first.Ticket == second.Ticket {
				if !player.Has(first.Ticket, 2) {
					continue
				}
			} else if !player.Has(first.Ticket, 1) || !player.Has(second.Ticket, 1) {
				continue
			}
			moves.Add(DoubleMove{Colour: player.Colour, First: first, Second: second})
		}
	}
	return moves
}

// LegalMoves returns every move player may make now. A seeker that cannot move gets a single
// pass; an evader that cannot move gets nothing, which loses the game.
func (p Position) LegalMoves(player *Player) MoveSet {
	moves := p.SingleMoves(player, player.Location)
	if player.IsEvader() {
		moves.Union(p.DoubleMoves(player, moves))
	}
	if len(moves) == 0 && player.IsSeeker() {
		moves.Add(PassMove{Colour: player.Colour})
	}
	return moves
}
