// Package ledger counts the people waiting for the car, per origin floor and
// per (origin, destination) pair.
package ledger

import "windasim/src/utils"

type Ledger struct {
	byOrigin []int
	byPair   [][]int
}

func New(floors int) *Ledger {
	l := &Ledger{
		byOrigin: make([]int, floors),
		byPair:   make([][]int, floors),
	}
	for f := range l.byPair {
		l.byPair[f] = make([]int, floors)
	}
	return l
}

func (l *Ledger) Floors() int {
	return len(l.byOrigin)
}

func (l *Ledger) valid(floor int) bool {
	return floor >= 0 && floor < len(l.byOrigin)
}

// Add registers one more person waiting at origin for destination.
// Out of range floors are ignored.
func (l *Ledger) Add(origin, destination int) {
	if !l.valid(origin) || !l.valid(destination) {
		return
	}
	l.byPair[origin][destination]++
	l.byOrigin[origin]++
}

// Remove takes one person off both counters. Counters never drop below zero.
func (l *Ledger) Remove(origin, destination int) {
	if !l.valid(origin) || !l.valid(destination) {
		return
	}
	l.byOrigin[origin] = max(0, l.byOrigin[origin]-1)
	l.byPair[origin][destination] = max(0, l.byPair[origin][destination]-1)
}

func (l *Ledger) Waiting(floor int) int {
	if !l.valid(floor) {
		return 0
	}
	return l.byOrigin[floor]
}

func (l *Ledger) Pair(origin, destination int) int {
	if !l.valid(origin) || !l.valid(destination) {
		return 0
	}
	return l.byPair[origin][destination]
}

// WaitingAbove reports whether anyone waits strictly above floor.
func (l *Ledger) WaitingAbove(floor int) bool {
	return l.count(floor+1, len(l.byOrigin)) > 0
}

// WaitingBelow reports whether anyone waits strictly below floor.
func (l *Ledger) WaitingBelow(floor int) bool {
	return l.count(0, floor) > 0
}

func (l *Ledger) count(startFloor, endFloor int) (result int) {
	for floor := max(startFloor, 0); floor < min(endFloor, len(l.byOrigin)); floor++ {
		result += l.byOrigin[floor]
	}
	return result
}

func (l *Ledger) Total() int {
	return l.count(0, len(l.byOrigin))
}

// Consistent reports whether every origin count equals the sum of its pairs.
func (l *Ledger) Consistent() bool {
	sums := make([]int, len(l.byOrigin))
	utils.ForEachPair(len(l.byOrigin), func(origin, destination int) {
		sums[origin] += l.byPair[origin][destination]
	})
	for f, n := range l.byOrigin {
		if sums[f] != n || l.byPair[f][f] != 0 {
			return false
		}
	}
	return true
}

// ByOrigin returns the live per-origin counters. Callers must not modify them.
func (l *Ledger) ByOrigin() []int {
	return l.byOrigin
}

// Pairs returns the live pair counters. Callers must not modify them.
func (l *Ledger) Pairs() [][]int {
	return l.byPair
}
