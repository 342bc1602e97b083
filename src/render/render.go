// Package render draws a snapshot of the simulation as text, top floor first.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"windasim/src/types"
)

type Renderer struct {
	p *message.Printer
}

func New(tag language.Tag) *Renderer {
	return &Renderer{p: message.NewPrinter(tag)}
}

func (r *Renderer) Render(w io.Writer, snap types.Snapshot) error {
	var b strings.Builder

	r.p.Fprintf(&b, "%s\n", snap.Name)
	for floor := snap.Floors - 1; floor >= 0; floor-- {
		r.p.Fprintf(&b, "%d | waiting %3d | %s | %s\n",
			floor, waitingAt(snap, floor), buttons(snap, floor), car(snap, floor))
	}
	r.p.Fprintf(&b, "Passengers: %d/%d  Load: %d kg\n", snap.Passengers, snap.Capacity, snap.Load())

	_, err := io.WriteString(w, b.String())
	return err
}

func waitingAt(snap types.Snapshot, floor int) int {
	if floor >= len(snap.Waiting) {
		return 0
	}
	return snap.Waiting[floor]
}

// buttons lists the destinations reachable from floor, bracketing those someone asked for.
func buttons(snap types.Snapshot, floor int) string {
	var b strings.Builder
	for dest := range snap.Floors {
		if dest == floor {
			continue
		}
		lit := floor < len(snap.WaitingPairs) && dest < len(snap.WaitingPairs[floor]) && snap.WaitingPairs[floor][dest] > 0
		if lit {
			fmt.Fprintf(&b, "[%d]", dest)
		} else {
			fmt.Fprintf(&b, " %d ", dest)
		}
	}
	return b.String()
}

func car(snap types.Snapshot, floor int) string {
	if snap.Floor != floor {
		walking := 0
		for _, rider := range snap.Riders {
			if rider.State == types.KindWalking && rider.Origin == floor {
				walking++
			}
		}
		return strings.Repeat("~", walking)
	}

	mark := " "
	switch {
	case snap.Boarding:
		mark = "="
	case snap.Moving && snap.Dir == types.Up:
		mark = "^"
	case snap.Moving && snap.Dir == types.Down:
		mark = "v"
	}
	return fmt.Sprintf("[%2d%s]", snap.Passengers, mark)
}
