// State types are defined here to keep the command plumbing next to the state it guards.
package elev

import (
	"errors"
	"time"

	"windasim/src/config"
	"windasim/src/ledger"
	"windasim/src/types"
)

var (
	ErrFloorOutOfRange = errors.New("floor out of range")
	ErrSameFloor       = errors.New("origin equals destination")
)

// Sim is one simulated car together with its riders and the request ledger.
// It is not safe for concurrent use, see Manager.
type Sim struct {
	cfg  config.Config
	name string

	position    int // motion steps, floor f sits at f*FloorSpacing
	floor       int
	dir         types.Direction
	moving      bool
	boarding    bool
	departing   bool // suppresses arrival at the floor being left
	stopStarted time.Time
	stopSeq     uint64

	onboard    []int // passengers per destination floor
	passengers int

	ledger *ledger.Ledger
	riders []types.Rider
	nextID int
}

// SimCmd sends a command to the simulation manager.
type SimCmd struct {
	Exec func(sim *Sim)
}

// Manager owns the simulation and serializes its access.
type Manager struct {
	cmds chan SimCmd
	done chan struct{}
}
