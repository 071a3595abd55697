package board

import (
	"os"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"manhunt/game"
)

// Load reads a board from a DOT file. See ParseDOT for the format.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading board %s", path)
	}
	b, err := ParseDOT(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "board %s", path)
	}
	return b, nil
}

// ParseDOT builds a board from a DOT graph. Stations are numeric node names and every edge
// carries its transport as label, e.g.
//
//	graph london {
//		1 -- 8 [label=taxi];
//		1 -- 46 [label=underground];
//	}
//
// Undirected graphs produce routes in both directions, digraphs one-way routes.
func ParseDOT(data []byte) (*Board, error) {
	g, err := gographviz.Read(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing dot")
	}

	b := New()
	for _, node := range g.Nodes.Nodes {
		id, err := station(node.Name)
		if err != nil {
			return nil, err
		}
		b.AddStation(id)
	}
	for _, edge := range g.Edges.Edges {
		from, err := station(edge.Src)
		if err != nil {
			return nil, err
		}
		to, err := station(edge.Dst)
		if err != nil {
			return nil, err
		}
		if from == to {
			return nil, errors.Errorf("route %d -> %d loops on itself", from, to)
		}
		label, ok := edge.Attrs["label"]
		if !ok {
			return nil, errors.Errorf("route %d -> %d has no transport label", from, to)
		}
		transport, err := game.ParseTransport(unquote(label))
		if err != nil {
			return nil, errors.WithMessagef(err, "route %d -> %d", from, to)
		}
		if g.Directed {
			b.AddOneWayRoute(from, to, transport)
		} else {
			b.AddRoute(from, to, transport)
		}
	}
	return b, nil
}

func station(name string) (int, error) {
	id, err := strconv.Atoi(unquote(name))
	if err != nil {
		return 0, errors.Wrapf(err, "station %s is not a number", name)
	}
	return id, nil
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}
