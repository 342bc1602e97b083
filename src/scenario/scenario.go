// Package scenario replays a scripted list of calls against a simulation
// without a wall clock.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"windasim/src/elev"
	"windasim/src/types"
)

// MaxTicks bounds a run-until-idle scenario.
const MaxTicks = 100_000

var ErrNotIdle = errors.New("simulation did not become idle")

type ScriptedCall struct {
	Tick int `yaml:"tick"`
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Scenario lists calls issued before the given tick. With Ticks set to 0 the
// run continues until the car is idle and every rider has arrived.
type Scenario struct {
	Ticks int            `yaml:"ticks"`
	Calls []ScriptedCall `yaml:"calls"`
}

func Load(path string) (Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

func Decode(r io.Reader) (Scenario, error) {
	var sc Scenario
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return sc, fmt.Errorf("decode scenario: %w", err)
	}
	if sc.Ticks < 0 {
		return sc, fmt.Errorf("negative tick count %d", sc.Ticks)
	}
	for _, c := range sc.Calls {
		if c.Tick < 0 {
			return sc, fmt.Errorf("call %d->%d at negative tick %d", c.From, c.To, c.Tick)
		}
	}
	return sc, nil
}

// Run drives sim with synthetic time starting at start and returns the final snapshot
// along with the number of ticks stepped.
func Run(sim *elev.Sim, sc Scenario, start time.Time, interval time.Duration) (types.Snapshot, int, error) {
	calls := slices.Clone(sc.Calls)
	slices.SortStableFunc(calls, func(a, b ScriptedCall) int { return a.Tick - b.Tick })

	limit := sc.Ticks
	if limit == 0 {
		limit = MaxTicks
	}

	next := 0
	tick := 0
	for ; tick < limit; tick++ {
		for next < len(calls) && calls[next].Tick <= tick {
			c := calls[next]
			if err := sim.CheckCall(c.From, c.To); err != nil {
				slog.Warn("Skipping scripted call", "tick", c.Tick, "error", err)
			}
			sim.Call(c.From, c.To)
			next++
		}
		if sc.Ticks == 0 && next == len(calls) && idle(sim) {
			break
		}
		sim.Step(start.Add(time.Duration(tick+1) * interval))
	}

	if sc.Ticks == 0 && (next < len(calls) || !idle(sim)) {
		return sim.Snapshot(), tick, ErrNotIdle
	}
	return sim.Snapshot(), tick, nil
}

func idle(sim *elev.Sim) bool {
	return !sim.Moving() && !sim.Boarding() && len(sim.Riders()) == 0
}
