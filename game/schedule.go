package game

// NotStarted is the round index before the evader's first move.
const NotStarted = 0

// Schedule holds one entry per evader move; true marks a reveal round.
type Schedule []bool

// IsReveal reports whether the evader's destination is disclosed for a move played in the
// given round. Rounds outside the schedule are never reveal rounds.
func (s Schedule) IsReveal(round int) bool {
	if round < 0 || round >= len(s) {
		return false
	}
	return s[round]
}

// LastRound is the index of the final round.
func (s Schedule) LastRound() int {
	return len(s) - 1
}

// Copy returns an independent copy of the schedule.
func (s Schedule) Copy() Schedule {
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}
