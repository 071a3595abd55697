// Package board provides the transport network the game is played on.
package board

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"

	"manhunt/game"
)

// route is one line of the multigraph, labelled with its transport.
type route struct {
	multi.Line
	transport game.Transport
}

// Board is a directed multigraph of stations. Stations may be linked by several routes of
// different transports. Board implements game.Graph.
type Board struct {
	g     *multi.DirectedGraph
	lines int64
}

// New returns an empty board.
func New() *Board {
	return &Board{g: multi.NewDirectedGraph()}
}

// AddStation adds a station if it is not on the board yet.
func (b *Board) AddStation(id int) {
	if b.g.Node(int64(id)) == nil {
		b.g.AddNode(multi.Node(id))
	}
}

// AddRoute links two stations in both directions.
func (b *Board) AddRoute(a, c int, transport game.Transport) {
	b.AddOneWayRoute(a, c, transport)
	b.AddOneWayRoute(c, a, transport)
}

// AddOneWayRoute links from to to. Adding the same route twice has no effect.
func (b *Board) AddOneWayRoute(from, to int, transport game.Transport) {
	if from == to {
		panic(fmt.Sprintf("route %d -> %d loops on itself", from, to))
	}
	b.AddStation(from)
	b.AddStation(to)
	if b.hasRoute(from, to, transport) {
		return
	}
	b.lines++
	b.g.SetLine(route{
		Line:      multi.Line{F: multi.Node(from), T: multi.Node(to), UID: b.lines},
		transport: transport,
	})
}

func (b *Board) hasRoute(from, to int, transport game.Transport) bool {
	lines := b.g.Lines(int64(from), int64(to))
	if lines == nil {
		return false
	}
	for lines.Next() {
		if r, ok := lines.Line().(route); ok && r.transport == transport {
			return true
		}
	}
	return false
}

// Nodes returns every station id in ascending order.
func (b *Board) Nodes() []int {
	nodes := b.g.Nodes()
	ids := make([]int, 0, nodes.Len())
	for nodes.Next() {
		ids = append(ids, int(nodes.Node().ID()))
	}
	sort.Ints(ids)
	return ids
}

func (b *Board) HasNode(id int) bool {
	return b.g.Node(int64(id)) != nil
}

// EdgesFrom returns the routes leaving a station ordered by destination and transport.
func (b *Board) EdgesFrom(id int) []game.Edge {
	if !b.HasNode(id) {
		return nil
	}
	var edges []game.Edge
	to := b.g.From(int64(id))
	for to.Next() {
		edges = append(edges, b.routes(id, to.Node())...)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Destination != edges[j].Destination {
			return edges[i].Destination < edges[j].Destination
		}
		return edges[i].Transport < edges[j].Transport
	})
	return edges
}

func (b *Board) routes(from int, to graph.Node) []game.Edge {
	var edges []game.Edge
	lines := b.g.Lines(int64(from), to.ID())
	for lines.Next() {
		r := lines.Line().(route)
		edges = append(edges, game.Edge{Destination: int(to.ID()), Transport: r.transport})
	}
	return edges
}

// Routes counts the one-way routes on the board.
func (b *Board) Routes() int {
	return int(b.lines)
}
