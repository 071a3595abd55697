// meta/meta.go
package meta

import "manhunt/game"

// StandardRounds is the classic 24 round schedule. The evader surfaces on the 3rd, 8th,
// 13th, 18th and 24th move.
var StandardRounds = game.Schedule{
	false, false, true, false, false, false, false, true, false, false, false, false,
	true, false, false, false, false, true, false, false, false, false, false, true,
}

// EvaderTickets is the evader's starting hand. The evader also receives every ticket the
// seekers spend.
var EvaderTickets = map[game.Ticket]int{
	game.Taxi:        4,
	game.Bus:         3,
	game.Underground: 3,
	game.Double:      2,
	game.Secret:      5,
}

// SeekerTickets is each seeker's starting hand.
var SeekerTickets = map[game.Ticket]int{
	game.Taxi:        11,
	game.Bus:         8,
	game.Underground: 4,
	game.Double:      0,
	game.Secret:      0,
}

// MAX_ROTATIONS bounds a game played by the runner.
const MAX_ROTATIONS = 100

// NUM_GAMES is how many games the runner plays per matchup.
const NUM_GAMES = 30
