package game

// Position is the rules-relevant part of a game in progress. The turn engine builds one from
// its own state whenever it needs legal moves or the outcome; the rules never mutate it.
type Position struct {
	Graph         Graph
	Schedule      Schedule
	Players       []*Player // Evader first, then seekers in turn order
	Round         int
	RoundFinished bool
}

// Evader returns the evader's record.
func (p Position) Evader() *Player {
	for _, player := range p.Players {
		if player.IsEvader() {
			return player
		}
	}
	panic("position has no evader")
}

// Seekers returns the seekers' records in turn order.
func (p Position) Seekers() []*Player {
	seekers := make([]*Player, 0, len(p.Players))
	for _, player := range p.Players {
		if player.IsSeeker() {
			seekers = append(seekers, player)
		}
	}
	return seekers
}
