package game

import (
	"fmt"
	"strings"
)

// Colour identifies a participant. Black is always the evader, every other colour is a seeker.
type Colour int

const (
	Black Colour = iota
	Blue
	Green
	Red
	White
	Yellow
)

var colourNames = map[Colour]string{
	Black:  "black",
	Blue:   "blue",
	Green:  "green",
	Red:    "red",
	White:  "white",
	Yellow: "yellow",
}

func (c Colour) String() string {
	if name, ok := colourNames[c]; ok {
		return name
	}
	return fmt.Sprintf("colour(%d)", int(c))
}

func (c Colour) IsEvader() bool { return c == Black }

func (c Colour) IsSeeker() bool { return c != Black }

// ParseColour returns the colour named by s, ignoring case.
func ParseColour(s string) (Colour, error) {
	for c, name := range colourNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown colour %q", s)
}
