package types

// RiderView is the flattened, presentation-friendly form of a Rider.
type RiderView struct {
	ID              int
	Origin          int
	Destination     int
	State           StateKind
	Progress        float64
	BoardedThisStop bool
}

// Snapshot is a read-only copy of the whole simulation, sized for a renderer.
type Snapshot struct {
	Name            string
	Floors          int
	Capacity        int
	PassengerWeight int
	FloorSpacing    int
	Position        int
	Floor           int
	Dir             Direction
	Moving          bool
	Boarding        bool
	Passengers      int
	Waiting         []int   // per origin floor
	WaitingPairs    [][]int // origin, destination
	Onboard         []int   // per destination floor
	Riders          []RiderView
}

// Load is the weight carried by the car in kg.
func (s Snapshot) Load() int {
	return s.Passengers * s.PassengerWeight
}

// Height is the car position in floors, e.g. 2.5 is halfway between 2 and 3.
func (s Snapshot) Height() float64 {
	if s.FloorSpacing == 0 {
		return 0
	}
	return float64(s.Position) / float64(s.FloorSpacing)
}

func (s Snapshot) CountState(kind StateKind) (n int) {
	for _, r := range s.Riders {
		if r.State == kind {
			n++
		}
	}
	return n
}
