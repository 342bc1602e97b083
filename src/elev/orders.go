package elev

import "windasim/src/types"

// Algorithm for choosing direction of the car.
//  1. Passengers on board are served first: head for the lowest floor any of them is going to.
//  2. At the top or bottom floor, turn around.
//  3. Keep going if people wait further along the current direction.
//  4. Otherwise reverse if people wait behind the car.
//  5. Otherwise park, unless the car is between floors with work at the nearest one.
func (s *Sim) chooseDirection() {
	if floor, ok := s.firstOnboardDestination(); ok {
		s.dir = types.Toward(s.floor, floor)
		s.moving = true
		return
	}

	switch s.floor {
	case s.cfg.Floors - 1:
		s.dir = types.Down
	case 0:
		s.dir = types.Up
	}

	switch {
	case s.waitingAhead(s.dir):
		s.moving = true
	case s.waitingAhead(s.dir.Opposite()):
		s.dir = s.dir.Opposite()
		s.moving = true
	case s.demandHere() && !s.atFloor():
		s.dir = types.Toward(s.position, s.coord(s.floor))
		s.moving = true
	default:
		s.moving = false
		s.departing = false
	}
}

// firstOnboardDestination scans floors bottom up for a passenger destination other than the current floor.
func (s *Sim) firstOnboardDestination() (int, bool) {
	for floor, n := range s.onboard {
		if n > 0 && floor != s.floor {
			return floor, true
		}
	}
	return 0, false
}

func (s *Sim) waitingAhead(dir types.Direction) bool {
	if dir == types.Up {
		return s.ledger.WaitingAbove(s.floor)
	}
	return s.ledger.WaitingBelow(s.floor)
}
