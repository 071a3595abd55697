package game

import "sort"

// fakeGraph is an undirected graph built from routes.
type fakeGraph map[int][]Edge

func newFakeGraph(routes ...route) fakeGraph {
	g := fakeGraph{}
	for _, r := range routes {
		g[r.a] = append(g[r.a], Edge{Destination: r.b, Transport: r.transport})
		g[r.b] = append(g[r.b], Edge{Destination: r.a, Transport: r.transport})
	}
	return g
}

type route struct {
	a, b      int
	transport Transport
}

func (g fakeGraph) Nodes() []int {
	nodes := make([]int, 0, len(g))
	for id := range g {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)
	return nodes
}

func (g fakeGraph) HasNode(id int) bool {
	_, ok := g[id]
	return ok
}

func (g fakeGraph) EdgesFrom(id int) []Edge {
	return g[id]
}

func tickets(taxi, bus, underground, double, secret int) map[Ticket]int {
	return map[Ticket]int{
		Taxi:        taxi,
		Bus:         bus,
		Underground: underground,
		Double:      double,
		Secret:      secret,
	}
}
