package game

// Side is the team that won the game.
type Side int

const (
	NoSide Side = iota
	EvaderSide
	SeekerSide
)

func (s Side) String() string {
	switch s {
	case EvaderSide:
		return "evader"
	case SeekerSide:
		return "seekers"
	default:
		return "none"
	}
}

// Outcome is the result of evaluating a position.
type Outcome struct {
	Winner  Side
	Winners []Colour // Winning colours in turn order, empty while the game goes on
}

func (o Outcome) Over() bool {
	return o.Winner != NoSide
}

// Evaluate decides whether the game is over and who won. The rules are applied in order:
//  1. an evader without legal moves loses,
//  2. the evader wins once the last round has been played and the rotation is finished,
//  3. a seeker on the evader's station wins,
//  4. the evader wins when no seeker holds any ticket.
func Evaluate(p Position) Outcome {
	evader := p.Evader()
	seekers := p.Seekers()

	if len(p.LegalMoves(evader)) == 0 {
		return seekersWin(seekers)
	}
	if p.Round >= len(p.Schedule) && p.RoundFinished {
		return evaderWins(evader)
	}
	remaining := 0
	for _, seeker := range seekers {
		if seeker.Location == evader.Location {
			return seekersWin(seekers)
		}
		remaining += seeker.TotalTickets()
	}
	if remaining == 0 {
		return evaderWins(evader)
	}
	return Outcome{Winner: NoSide, Winners: []Colour{}}
}

func seekersWin(seekers []*Player) Outcome {
	winners := make([]Colour, len(seekers))
	for i, seeker := range seekers {
		winners[i] = seeker.Colour
	}
	return Outcome{Winner: SeekerSide, Winners: winners}
}

func evaderWins(evader *Player) Outcome {
	return Outcome{Winner: EvaderSide, Winners: []Colour{evader.Colour}}
}
