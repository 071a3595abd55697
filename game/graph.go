package game

// Edge is a route leaving a station.
type Edge struct {
	Destination int
	Transport   Transport
}

// Graph is the read-only transport network the game is played on.
type Graph interface {
	// Nodes returns every station id.
	Nodes() []int
	HasNode(id int) bool
	// EdgesFrom returns the routes leaving station id. Parallel routes of different
	// transports to the same destination are separate edges.
	EdgesFrom(id int) []Edge
}
