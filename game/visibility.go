package game

// Visibility decides what observers learn about the evader's moves. The true destination is
// always applied to the game; only the announced copy is filtered.
type Visibility struct {
	Schedule  Schedule
	Round     int // Round the move is played in
	Disclosed int // Last location disclosed to observers, 0 if never
}

// Single returns the observer-facing copy of a ticket move. Seeker moves are shown as they
// are; an evader move in a hidden round reports the last disclosed location instead.
func (v Visibility) Single(m TicketMove) TicketMove {
	if m.Colour.IsSeeker() || v.Schedule.IsReveal(v.Round) {
		return m
	}
	m.Destination = v.Disclosed
	return m
}

// Double returns the observer-facing copy of a double move spanning Round and Round+1.
func (v Visibility) Double(m DoubleMove) DoubleMove {
	firstRevealed := v.Schedule.IsReveal(v.Round)
	secondRevealed := v.Schedule.IsReveal(v.Round + 1)

	shown := m
	switch {
	case firstRevealed && secondRevealed:
	case firstRevealed:
		shown.Second.Destination = m.First.Destination
	case secondRevealed:
		shown.First.Destination = v.Disclosed
	default:
		shown.First.Destination = v.Disclosed
		shown.Second.Destination = v.Disclosed
	}
	return shown
}

// Disclose returns the disclosed location after the evader moves to destination in Round.
func (v Visibility) Disclose(destination int) int {
	if v.Schedule.IsReveal(v.Round) {
		return destination
	}
	return v.Disclosed
}
