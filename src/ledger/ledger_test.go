package ledger

import "testing"

func TestAddAndRemove(t *testing.T) {
	l := New(5)
	l.Add(0, 4)
	l.Add(0, 4)
	l.Add(0, 2)
	l.Add(3, 1)

	if l.Waiting(0) != 3 {
		t.Errorf("Expected 3 waiting at 0, got %d", l.Waiting(0))
	}
	if l.Pair(0, 4) != 2 {
		t.Errorf("Expected 2 waiting for 0->4, got %d", l.Pair(0, 4))
	}
	if !l.Consistent() {
		t.Errorf("Expected consistent ledger after adds")
	}

	l.Remove(0, 4)
	if l.Waiting(0) != 2 || l.Pair(0, 4) != 1 {
		t.Errorf("Expected 2 and 1 after remove, got %d and %d", l.Waiting(0), l.Pair(0, 4))
	}
	if l.Total() != 3 {
		t.Errorf("Expected total 3, got %d", l.Total())
	}
}

func TestRemoveIsFlooredAtZero(t *testing.T) {
	l := New(3)
	l.Remove(1, 2)
	if l.Waiting(1) != 0 || l.Pair(1, 2) != 0 {
		t.Errorf("Expected counters to stay at zero, got %d and %d", l.Waiting(1), l.Pair(1, 2))
	}
}

func TestOutOfRangeIsIgnored(t *testing.T) {
	l := New(3)
	l.Add(-1, 2)
	l.Add(1, 3)
	l.Remove(5, 0)
	if l.Total() != 0 {
		t.Errorf("Expected empty ledger, got %d", l.Total())
	}
	if l.Waiting(7) != 0 || l.Pair(0, 9) != 0 {
		t.Errorf("Expected zero for out of range queries")
	}
}

func TestAboveBelow(t *testing.T) {
	l := New(5)
	l.Add(3, 0)

	tests := []struct {
		floor        int
		above, below bool
	}{
		{0, true, false},
		{2, true, false},
		{3, false, false},
		{4, false, true},
	}
	for _, tt := range tests {
		if got := l.WaitingAbove(tt.floor); got != tt.above {
			t.Errorf("WaitingAbove(%d): expected %v, got %v", tt.floor, tt.above, got)
		}
		if got := l.WaitingBelow(tt.floor); got != tt.below {
			t.Errorf("WaitingBelow(%d): expected %v, got %v", tt.floor, tt.below, got)
		}
	}
}
