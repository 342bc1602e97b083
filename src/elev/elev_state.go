package elev

import (
	"context"
	"time"

	"github.com/tiendc/go-deepcopy"

	"windasim/src/types"
)

// Snapshot returns a deep copy of the simulation for renderers.
func (s *Sim) Snapshot() types.Snapshot {
	view := types.Snapshot{
		Name:            s.name,
		Floors:          s.cfg.Floors,
		Capacity:        s.cfg.Capacity,
		PassengerWeight: s.cfg.PassengerWeight,
		FloorSpacing:    s.cfg.FloorSpacing,
		Position:        s.position,
		Floor:           s.floor,
		Dir:             s.dir,
		Moving:          s.moving,
		Boarding:        s.boarding,
		Passengers:      s.passengers,
		Waiting:         s.ledger.ByOrigin(),
		WaitingPairs:    s.ledger.Pairs(),
		Onboard:         s.onboard,
		Riders:          make([]types.RiderView, 0, len(s.riders)),
	}
	for _, r := range s.riders {
		view.Riders = append(view.Riders, types.RiderView{
			ID:              r.ID,
			Origin:          r.Origin,
			Destination:     r.Destination,
			State:           r.State.Kind(),
			Progress:        r.ApproachProgress(),
			BoardedThisStop: r.BoardedDuring(s.stopSeq),
		})
	}

	snap := new(types.Snapshot)
	if err := deepcopy.Copy(snap, &view); err != nil {
		panic(err)
	}
	return *snap
}

// StartManager starts the goroutine that owns sim until ctx is cancelled.
func StartManager(ctx context.Context, sim *Sim) *Manager {
	mgr := &Manager{
		cmds: make(chan SimCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for {
			select {
			case <-ctx.Done():
				return
			case cmd := <-mgr.cmds:
				cmd.Exec(sim)
			}
		}
	}()
	return mgr
}

// Execute runs cmd on the manager goroutine. It returns false once the manager has stopped.
func (mgr *Manager) Execute(cmd SimCmd) bool {
	select {
	case mgr.cmds <- cmd:
		return true
	case <-mgr.done:
		return false
	}
}

func (mgr *Manager) Call(origin, destination int) {
	mgr.Execute(SimCmd{Exec: func(sim *Sim) { sim.Call(origin, destination) }})
}

func (mgr *Manager) Step(now time.Time) {
	mgr.Execute(SimCmd{Exec: func(sim *Sim) { sim.Step(now) }})
}

// Snapshot copies the state inside the manager goroutine.
func (mgr *Manager) Snapshot() (types.Snapshot, bool) {
	reply := make(chan types.Snapshot, 1)
	if !mgr.Execute(SimCmd{Exec: func(sim *Sim) { reply <- sim.Snapshot() }}) {
		return types.Snapshot{}, false
	}
	return <-reply, true
}

// Done is closed when the manager goroutine exits.
func (mgr *Manager) Done() <-chan struct{} {
	return mgr.done
}
