package board

import "manhunt/game"

// Default returns the built-in demo board: a small city of 24 stations with taxi, bus and
// underground routes and one ferry crossing.
func Default() *Board {
	b := New()
	for _, r := range defaultRoutes {
		b.AddRoute(r.a, r.b, r.transport)
	}
	return b
}

// defaultRoutes is a hand-drawn city. Taxi routes form a grid, buses skip a block and the
// underground links the four corners through the centre.
var defaultRoutes = []struct {
	a, b      int
	transport game.Transport
}{
	// Taxi grid, four rows of six stations
	{1, 2, game.TaxiRoute}, {2, 3, game.TaxiRoute}, {3, 4, game.TaxiRoute}, {4, 5, game.TaxiRoute}, {5, 6, game.TaxiRoute},
	{7, 8, game.TaxiRoute}, {8, 9, game.TaxiRoute}, {9, 10, game.TaxiRoute}, {10, 11, game.TaxiRoute}, {11, 12, game.TaxiRoute},
	{13, 14, game.TaxiRoute}, {14, 15, game.TaxiRoute}, {15, 16, game.TaxiRoute}, {16, 17, game.TaxiRoute}, {17, 18, game.TaxiRoute},
	{19, 20, game.TaxiRoute}, {20, 21, game.TaxiRoute}, {21, 22, game.TaxiRoute}, {22, 23, game.TaxiRoute}, {23, 24, game.TaxiRoute},
	{1, 7, game.TaxiRoute}, {7, 13, game.TaxiRoute}, {13, 19, game.TaxiRoute},
	{3, 9, game.TaxiRoute}, {9, 15, game.TaxiRoute}, {15, 21, game.TaxiRoute},
	{4, 10, game.TaxiRoute}, {10, 16, game.TaxiRoute}, {16, 22, game.TaxiRoute},
	{6, 12, game.TaxiRoute}, {12, 18, game.TaxiRoute}, {18, 24, game.TaxiRoute},

	// Bus lines
	{1, 3, game.BusRoute}, {3, 5, game.BusRoute},
	{7, 9, game.BusRoute}, {9, 11, game.BusRoute},
	{14, 16, game.BusRoute}, {16, 18, game.BusRoute},
	{20, 22, game.BusRoute}, {22, 24, game.BusRoute},
	{2, 14, game.BusRoute}, {5, 17, game.BusRoute}, {8, 20, game.BusRoute}, {11, 23, game.BusRoute},

	// Underground
	{1, 9, game.UndergroundRoute}, {6, 10, game.UndergroundRoute},
	{9, 16, game.UndergroundRoute}, {10, 15, game.UndergroundRoute},
	{15, 19, game.UndergroundRoute}, {16, 24, game.UndergroundRoute},

	// Ferry across the river
	{12, 19, game.Ferry},
}
