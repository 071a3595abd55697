// Package config reads game setups from YAML files.
//
//	board: city.dot            # optional, the built-in board otherwise
//	rounds: [false, true]      # optional, the standard schedule when absent
//	seed: 42                   # optional, seeds the random agents
//	evader:
//	  colour: black
//	  location: 1
//	  agent: random
//	  tickets: {taxi: 4, bus: 3, underground: 3, double: 2, secret: 5}
//	seekers:
//	  - colour: blue
//	    location: 10
//	    agent: first
//
// A player without a tickets section starts with the standard hand. A tickets section that
// leaves out a ticket kind is kept as is and rejected when the engine is built.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"manhunt/agent"
	"manhunt/board"
	"manhunt/engine"
	"manhunt/game"
	"manhunt/meta"
)

const DefaultAgent = "random"

type playerFile struct {
	Colour   string         `yaml:"colour"`
	Location int            `yaml:"location"`
	Agent    string         `yaml:"agent"`
	Tickets  map[string]int `yaml:"tickets"`
}

type file struct {
	Board   string       `yaml:"board"`
	Rounds  *[]bool      `yaml:"rounds"`
	Seed    uint64       `yaml:"seed"`
	Evader  playerFile   `yaml:"evader"`
	Seekers []playerFile `yaml:"seekers"`
}

// Player is a starting record and the name of the agent controlling it.
type Player struct {
	game.PlayerConfig
	Agent string
}

type Game struct {
	Board    string // Path to a DOT board, empty for the built-in one
	Schedule game.Schedule
	Seed     uint64
	Evader   Player
	Seekers  []Player
}

// Load reads a setup file. A relative board path is resolved against the file's directory.
func Load(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	if g.Board != "" && !filepath.IsAbs(g.Board) {
		g.Board = filepath.Join(filepath.Dir(path), g.Board)
	}
	return g, nil
}

func Parse(data []byte) (*Game, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml")
	}

	g := &Game{Board: f.Board, Schedule: meta.StandardRounds.Copy(), Seed: f.Seed}
	if f.Rounds != nil {
		g.Schedule = game.Schedule(*f.Rounds)
	}

	evader, err := parsePlayer(f.Evader, meta.EvaderTickets)
	if err != nil {
		return nil, errors.WithMessage(err, "evader")
	}
	g.Evader = evader
	for i, s := range f.Seekers {
		seeker, err := parsePlayer(s, meta.SeekerTickets)
		if err != nil {
			return nil, errors.WithMessagef(err, "seeker %d", i+1)
		}
		g.Seekers = append(g.Seekers, seeker)
	}
	return g, nil
}

func parsePlayer(f playerFile, hand map[game.Ticket]int) (Player, error) {
	colour, err := game.ParseColour(f.Colour)
	if err != nil {
		return Player{}, errors.WithStack(err)
	}
	p := Player{
		PlayerConfig: game.PlayerConfig{Colour: colour, Location: f.Location, Tickets: map[game.Ticket]int{}},
		Agent:        f.Agent,
	}
	if p.Agent == "" {
		p.Agent = DefaultAgent
	}

	if f.Tickets == nil {
		for t, n := range hand {
			p.Tickets[t] = n
		}
		return p, nil
	}
	for name, n := range f.Tickets {
		t, err := game.ParseTicket(name)
		if err != nil {
			return Player{}, errors.WithMessage(err, colour.String())
		}
		p.Tickets[t] = n
	}
	return p, nil
}

// Graph returns the board the game is played on.
func (g *Game) Graph() (game.Graph, error) {
	if g.Board == "" {
		return board.Default(), nil
	}
	return board.Load(g.Board)
}

// Engine builds the engine configuration, giving every player its agent. Random agents are
// seeded from the game seed and their position in the turn order.
func (g *Game) Engine() (engine.Config, error) {
	graph, err := g.Graph()
	if err != nil {
		return engine.Config{}, err
	}

	cfg := engine.Config{Schedule: g.Schedule.Copy(), Graph: graph}
	for i, p := range append([]Player{g.Evader}, g.Seekers...) {
		controller, err := agent.New(p.Agent, g.Seed+uint64(i))
		if err != nil {
			return engine.Config{}, errors.WithMessage(err, p.Colour.String())
		}
		player := engine.PlayerConfig{PlayerConfig: p.PlayerConfig, Controller: controller}
		if i == 0 {
			cfg.Evader = player
		} else {
			cfg.Seekers = append(cfg.Seekers, player)
		}
	}
	return cfg, nil
}
