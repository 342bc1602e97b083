package input

import "testing"

func feedAll(p *Parser, keys string) []Call {
	var calls []Call
	for _, r := range keys {
		if call, ok := p.Feed(r); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

func TestParser(t *testing.T) {
	tests := []struct {
		keys     string
		expected []Call
	}{
		{"04", []Call{{0, 4}}},
		{"0431", []Call{{0, 4}, {3, 1}}},
		{"0x4", []Call{{0, 4}}},
		{"004", []Call{{0, 4}}},
		{"09", nil},
		{"9", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := feedAll(NewParser(5), tt.keys)
		if len(got) != len(tt.expected) {
			t.Errorf("%q: expected %v, got %v", tt.keys, tt.expected, got)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%q: expected %v, got %v", tt.keys, tt.expected, got)
			}
		}
	}
}

func TestParserReset(t *testing.T) {
	p := NewParser(5)
	p.Feed('2')
	if origin, ok := p.Pending(); !ok || origin != 2 {
		t.Errorf("Expected pending origin 2, got %d %v", origin, ok)
	}
	p.Reset()
	if _, ok := p.Pending(); ok {
		t.Errorf("Expected nothing pending after reset")
	}
	calls := feedAll(p, "13")
	if len(calls) != 1 || calls[0] != (Call{1, 3}) {
		t.Errorf("Expected Call{1 3}, got %v", calls)
	}
}
