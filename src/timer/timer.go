package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Ticker sends the current time on tickCh every interval while started.
// It starts running and exits when ctx is cancelled. action may be nil.
func Ticker(ctx context.Context, interval time.Duration, tickCh chan<- time.Time, action <-chan TimerAction) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	running := true

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Ticker stopped")
			return
		case a := <-action:
			switch a {
			case Start:
				if !running {
					ticker.Reset(interval)
					running = true
				}
			case Stop:
				ticker.Stop()
				running = false
			}
		case now := <-ticker.C:
			// Like time.Ticker, drop ticks for a slow receiver.
			select {
			case tickCh <- now:
			default:
				slog.Debug("Tick dropped")
			}
		}
	}
}
