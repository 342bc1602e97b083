package elev

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xyproto/randomstring"

	"windasim/src/config"
	"windasim/src/ledger"
	"windasim/src/types"
)

const nameLen = 8

// New creates an idle car parked at cfg.StartFloor facing up.
func New(cfg config.Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	name := cfg.Name
	if name == "" {
		name = randomstring.EnglishFrequencyString(nameLen)
		slog.Debug("No simulation name configured, generated one", "name", name)
	}
	sim := &Sim{
		cfg:     cfg,
		name:    name,
		floor:   cfg.StartFloor,
		dir:     types.Up,
		onboard: make([]int, cfg.Floors),
		ledger:  ledger.New(cfg.Floors),
	}
	sim.position = sim.coord(cfg.StartFloor)
	slog.Debug("Simulation initialized", "name", name, "floors", cfg.Floors, "capacity", cfg.Capacity)
	return sim, nil
}

// CheckCall reports why Call would ignore the request, if it would.
func (s *Sim) CheckCall(origin, destination int) error {
	if origin < 0 || origin >= s.cfg.Floors {
		return fmt.Errorf("%w: origin %d", ErrFloorOutOfRange, origin)
	}
	if destination < 0 || destination >= s.cfg.Floors {
		return fmt.Errorf("%w: destination %d", ErrFloorOutOfRange, destination)
	}
	if origin == destination {
		return fmt.Errorf("%w: %d", ErrSameFloor, origin)
	}
	return nil
}

// Call registers a person at origin who wants to go to destination.
// Invalid requests are silently ignored.
func (s *Sim) Call(origin, destination int) {
	if s.CheckCall(origin, destination) != nil {
		return
	}
	s.ledger.Add(origin, destination)
	s.chooseDirection()

	s.nextID++
	s.riders = append(s.riders, types.Rider{
		ID:          s.nextID,
		Origin:      origin,
		Destination: destination,
		State:       types.Waiting{},
	})
	slog.Debug("Call registered", "call", FormatCall(origin, destination), "moving", s.moving, "dir", s.dir)
}

// Step advances the simulation by one tick. now is only used for the dwell time.
func (s *Sim) Step(now time.Time) {
	if !s.boarding && !s.departing && s.atFloor() && s.demandHere() {
		s.arrive(now)
		return
	}
	if s.boarding {
		s.board(now)
		return
	}
	if !s.moving {
		return
	}
	s.advance()
}

// arrive stops the car at the current floor and drops off everyone going here.
func (s *Sim) arrive(now time.Time) {
	s.position = s.coord(s.floor)
	s.passengers = max(0, s.passengers-s.onboard[s.floor])
	s.onboard[s.floor] = 0
	s.boarding = true
	s.stopStarted = now
	s.stopSeq++
	slog.Debug("Stopping at floor",
		"floor", s.floor,
		"waiting", s.ledger.Waiting(s.floor),
		"passengers", s.passengers)
}

func (s *Sim) advance() {
	s.position += int(s.dir) * s.cfg.Speed
	s.position = min(max(s.position, 0), s.coord(s.cfg.Floors-1))
	s.departing = false

	spacing := s.cfg.FloorSpacing
	floor := (2*s.position + spacing) / (2 * spacing)
	s.floor = min(max(floor, 0), s.cfg.Floors-1)
}

func (s *Sim) coord(floor int) int {
	return floor * s.cfg.FloorSpacing
}

// atFloor reports whether the car is within one motion step of its floor.
func (s *Sim) atFloor() bool {
	d := s.position - s.coord(s.floor)
	if d < 0 {
		d = -d
	}
	return d < s.cfg.Speed
}

func (s *Sim) demandHere() bool {
	return s.ledger.Waiting(s.floor) > 0 || s.onboard[s.floor] > 0
}

func (s *Sim) Name() string               { return s.name }
func (s *Sim) Config() config.Config      { return s.cfg }
func (s *Sim) Floor() int                 { return s.floor }
func (s *Sim) Position() int              { return s.position }
func (s *Sim) Direction() types.Direction { return s.dir }
func (s *Sim) Moving() bool               { return s.moving }
func (s *Sim) Boarding() bool             { return s.boarding }
func (s *Sim) Passengers() int            { return s.passengers }
func (s *Sim) Waiting(floor int) int      { return s.ledger.Waiting(floor) }

func (s *Sim) WaitingPair(origin, destination int) int {
	return s.ledger.Pair(origin, destination)
}

func (s *Sim) Onboard(floor int) int {
	if floor < 0 || floor >= len(s.onboard) {
		return 0
	}
	return s.onboard[floor]
}

// Riders returns a copy of the rider set.
func (s *Sim) Riders() []types.Rider {
	return append([]types.Rider(nil), s.riders...)
}
