package utils

import (
	"fmt"
	"io"

	"windasim/src/types"
)

// ForEachPair is a helper function that reduces indentation when visiting every (origin, destination) pair
func ForEachPair(floors int, action func(origin, destination int)) {
	for origin := range floors {
		for destination := range floors {
			if origin == destination {
				continue
			}
			action(origin, destination)
		}
	}
}

// PrintStatus overwrites the current terminal line with a one-line summary of the car
func PrintStatus(w io.Writer, snap types.Snapshot) {
	state := "Idle"
	switch {
	case snap.Boarding:
		state = "Boarding"
	case snap.Moving:
		state = "Moving " + snap.Dir.String()
	}
	waiting := 0
	for _, n := range snap.Waiting {
		waiting += n
	}
	fmt.Fprintf(w, "\rFloor: %d | %-11s | Passengers: %2d/%d | Waiting: %3d ",
		snap.Floor, state, snap.Passengers, snap.Capacity, waiting)
}
