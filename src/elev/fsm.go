// Contains the rider state machine that runs while the car is stopped at a floor.
package elev

import (
	"log/slog"
	"slices"
	"time"

	"windasim/src/types"
)

// board runs one tick of a stop. Riders leave before anyone enters, capacity is counted
// before admission, and the car departs only after the minimum dwell time.
func (s *Sim) board(now time.Time) {
	for i := range s.riders {
		r := &s.riders[i]
		if r.State.Kind() == types.KindInElevator && r.Destination == s.floor {
			r.State = types.Exiting{}
		}
	}

	// Riders enter at the door, so an exiting rider is already there.
	s.riders = slices.DeleteFunc(s.riders, func(r types.Rider) bool {
		return r.State.Kind() == types.KindExiting && r.Destination == s.floor
	})

	occupied := s.occupied()

	// Only Waiting riders are admitted and admission makes them Walking,
	// so nobody queues twice during one stop.
	for i := range s.riders {
		r := &s.riders[i]
		if r.State.Kind() != types.KindWaiting || r.Origin != s.floor || occupied >= s.cfg.Capacity {
			continue
		}
		r.State = types.Walking{Remaining: s.cfg.WalkTicks, Total: s.cfg.WalkTicks, Stop: s.stopSeq}
		occupied++
	}

	for i := range s.riders {
		r := &s.riders[i]
		walking, ok := r.State.(types.Walking)
		if !ok || r.Origin != s.floor {
			continue
		}
		walking.Remaining = max(0, walking.Remaining-1)
		if walking.Remaining > 0 || s.passengers >= s.cfg.Capacity {
			r.State = walking
			continue
		}
		r.State = types.InElevator{}
		s.onboard[r.Destination]++
		s.passengers++
		s.ledger.Remove(r.Origin, r.Destination)
		slog.Debug("Rider entered", "rider", r.ID, "call", FormatCall(r.Origin, r.Destination), "passengers", s.passengers)
	}

	full := occupied >= s.cfg.Capacity
	if (s.pendingHere() && !full) || now.Sub(s.stopStarted) <= s.cfg.MinDwell {
		return
	}

	s.boarding = false
	s.chooseDirection()
	s.departing = s.moving
	slog.Debug("Stop finished",
		"floor", s.floor,
		"full", full,
		"passengers", s.passengers,
		"moving", s.moving,
		"dir", s.dir)
}

// occupied counts riders inside the car plus riders walking to it from the current floor.
func (s *Sim) occupied() (n int) {
	for _, r := range s.riders {
		switch r.State.Kind() {
		case types.KindInElevator:
			n++
		case types.KindWalking:
			if r.Origin == s.floor {
				n++
			}
		}
	}
	return n
}

// pendingHere reports whether anyone at the current floor still waits or walks to the car.
func (s *Sim) pendingHere() bool {
	for _, r := range s.riders {
		kind := r.State.Kind()
		if r.Origin == s.floor && (kind == types.KindWaiting || kind == types.KindWalking) {
			return true
		}
	}
	return false
}
