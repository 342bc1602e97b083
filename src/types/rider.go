package types

type StateKind int

const (
	KindWaiting StateKind = iota
	KindWalking
	KindInElevator
	KindExiting
)

func (k StateKind) String() string {
	switch k {
	case KindWaiting:
		return "Waiting"
	case KindWalking:
		return "Walking"
	case KindInElevator:
		return "InElevator"
	case KindExiting:
		return "Exiting"
	default:
		return "Undefined"
	}
}

// RiderState is one of Waiting, Walking, InElevator or Exiting.
type RiderState interface {
	Kind() StateKind
	riderState()
}

// Waiting riders stand at their origin floor until the car admits them.
type Waiting struct{}

// Walking riders have been admitted at stop number Stop and need Remaining
// more ticks to reach the door out of Total.
type Walking struct {
	Remaining int
	Total     int
	Stop      uint64
}

// InElevator riders ride the car until their destination.
type InElevator struct{}

// Exiting riders stand at the door of the car at their destination.
type Exiting struct{}

func (Waiting) Kind() StateKind    { return KindWaiting }
func (Walking) Kind() StateKind    { return KindWalking }
func (InElevator) Kind() StateKind { return KindInElevator }
func (Exiting) Kind() StateKind    { return KindExiting }

func (Waiting) riderState()    {}
func (Walking) riderState()    {}
func (InElevator) riderState() {}
func (Exiting) riderState()    {}

// Progress is the normalized distance left to the door, 0 meaning at the door.
func (w Walking) Progress() float64 {
	if w.Total <= 0 {
		return 0
	}
	return float64(w.Remaining) / float64(w.Total)
}

type Rider struct {
	ID          int
	Origin      int
	Destination int
	State       RiderState
}

// ApproachProgress reports the normalized distance to the door. Waiting
// riders are at 1 and riders inside or at the car are at 0.
func (r Rider) ApproachProgress() float64 {
	switch s := r.State.(type) {
	case Walking:
		return s.Progress()
	case Waiting:
		return 1
	default:
		return 0
	}
}

// BoardedDuring reports whether the rider was admitted during the given stop.
func (r Rider) BoardedDuring(stop uint64) bool {
	w, ok := r.State.(Walking)
	return ok && w.Stop == stop
}
