package elev

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"windasim/src/config"
)

func TestManagerSerializesAccess(t *testing.T) {
	sim, err := New(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mgr := StartManager(ctx, sim)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mgr.Call(0, 1+i)
		}()
	}
	wg.Wait()

	now := time.Unix(0, 0)
	for range 3 {
		now = now.Add(config.TickInterval)
		mgr.Step(now)
	}

	snap, ok := mgr.Snapshot()
	if !ok {
		t.Fatalf("Expected a snapshot from a running manager")
	}
	if len(snap.Riders) != 4 || snap.Waiting[0] != 4 {
		t.Errorf("Expected 4 riders waiting at floor 0, got %d riders and %d waiting", len(snap.Riders), snap.Waiting[0])
	}
	if !snap.Boarding {
		t.Errorf("Expected the car boarding at floor 0")
	}
}

func TestManagerStopsWithContext(t *testing.T) {
	sim, err := New(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	mgr := StartManager(ctx, sim)
	cancel()

	select {
	case <-mgr.Done():
	case <-time.After(time.Second):
		t.Fatalf("Manager did not stop after cancel")
	}
	if _, ok := mgr.Snapshot(); ok {
		t.Errorf("Expected no snapshot from a stopped manager")
	}
	if mgr.Execute(SimCmd{Exec: func(*Sim) {}}) {
		t.Errorf("Expected Execute to fail on a stopped manager")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for name, expected := range tests {
		if got := ParseLevel(name); got != expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", name, got, expected)
		}
	}
}

func TestReplaceAttrShortensSource(t *testing.T) {
	a := replaceAttr(nil, slog.Any(slog.SourceKey, &slog.Source{File: "/a/b/fsm.go", Line: 12}))
	if a.Value.String() != "fsm.go:12" {
		t.Errorf("Expected fsm.go:12, got %s", a.Value.String())
	}
	ts := time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)
	a = replaceAttr(nil, slog.Time(slog.TimeKey, ts))
	if a.Value.String() != "13:04:05" {
		t.Errorf("Expected 13:04:05, got %s", a.Value.String())
	}
}

func TestFormatCall(t *testing.T) {
	if FormatCall(0, 4) != "Call(0->4)" {
		t.Errorf("Expected Call(0->4), got %s", FormatCall(0, 4))
	}
}
