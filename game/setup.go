package game

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrEmptySchedule     = errors.New("round schedule is empty")
	ErrEmptyGraph        = errors.New("graph is empty")
	ErrNoSeekers         = errors.New("at least one seeker is required")
	ErrEvaderColour      = errors.New("evader must play black")
	ErrSeekerColour      = errors.New("seeker cannot play black")
	ErrDuplicateColour   = errors.New("duplicate colour")
	ErrDuplicateLocation = errors.New("duplicate starting location")
	ErrUnknownLocation   = errors.New("starting location is not on the graph")
	ErrMissingTicket     = errors.New("missing ticket entry")
	ErrNegativeTickets   = errors.New("negative ticket count")
	ErrForbiddenTicket   = errors.New("seeker holds a double or secret ticket")
)

// PlayerConfig is the starting record of one participant.
type PlayerConfig struct {
	Colour   Colour
	Location int
	Tickets  map[Ticket]int
}

// Setup is everything needed to start a game.
type Setup struct {
	Schedule Schedule
	Graph    Graph
	Evader   PlayerConfig
	Seekers  []PlayerConfig
}

// Players returns the evader followed by the seekers.
func (s Setup) Players() []PlayerConfig {
	return append([]PlayerConfig{s.Evader}, s.Seekers...)
}

// Validate reports every problem with the setup at once. The returned error wraps the
// package's Err* values, so callers can test for them with errors.Is.
func (s Setup) Validate() error {
	var errs error

	if len(s.Schedule) == 0 {
		errs = multierror.Append(errs, ErrEmptySchedule)
	}
	emptyGraph := s.Graph == nil || len(s.Graph.Nodes()) == 0
	if emptyGraph {
		errs = multierror.Append(errs, ErrEmptyGraph)
	}
	if len(s.Seekers) == 0 {
		errs = multierror.Append(errs, ErrNoSeekers)
	}
	if s.Evader.Colour.IsSeeker() {
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", s.Evader.Colour, ErrEvaderColour))
	}
	for _, seeker := range s.Seekers {
		if seeker.Colour.IsEvader() {
			errs = multierror.Append(errs, ErrSeekerColour)
		}
	}

	colours := map[Colour]bool{}
	locations := map[int]bool{}
	for i, config := range s.Players() {
		if colours[config.Colour] {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", config.Colour, ErrDuplicateColour))
		}
		colours[config.Colour] = true

		if locations[config.Location] {
			errs = multierror.Append(errs, fmt.Errorf("%d: %w", config.Location, ErrDuplicateLocation))
		}
		locations[config.Location] = true

		if !emptyGraph && !s.Graph.HasNode(config.Location) {
			errs = multierror.Append(errs, fmt.Errorf("%s at %d: %w", config.Colour, config.Location, ErrUnknownLocation))
		}
		if err := validateTickets(config, i == 0); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

func validateTickets(config PlayerConfig, isEvader bool) error {
	var errs error
	for _, t := range Tickets {
		n, ok := config.Tickets[t]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("%s has no %s entry: %w", config.Colour, t, ErrMissingTicket))
			continue
		}
		if n < 0 {
			errs = multierror.Append(errs, fmt.Errorf("%s has %d %s tickets: %w", config.Colour, n, t, ErrNegativeTickets))
		}
		if !isEvader && t.IsSpecial() && n > 0 {
			errs = multierror.Append(errs, fmt.Errorf("%s has %d %s tickets: %w", config.Colour, n, t, ErrForbiddenTicket))
		}
	}
	return errs
}
