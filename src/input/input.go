// Package input turns key presses into elevator calls. A call is typed as two
// digits: the origin floor followed by the destination floor.
package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eiannone/keyboard"
)

var ErrQuit = errors.New("quit requested")

type Call struct {
	Origin      int
	Destination int
}

type Parser struct {
	floors  int
	origin  int
	pending bool
}

func NewParser(floors int) *Parser {
	return &Parser{floors: floors}
}

// Feed consumes one key and returns a call once both floors have been typed.
// Keys that are not floor digits are ignored. Typing the origin twice keeps the
// origin pending.
func (p *Parser) Feed(r rune) (Call, bool) {
	floor, ok := p.floor(r)
	if !ok {
		return Call{}, false
	}
	if !p.pending {
		p.origin = floor
		p.pending = true
		return Call{}, false
	}
	if floor == p.origin {
		return Call{}, false
	}
	p.pending = false
	return Call{Origin: p.origin, Destination: floor}, true
}

func (p *Parser) Reset() {
	p.pending = false
}

// Pending returns the typed origin of a half-entered call.
func (p *Parser) Pending() (int, bool) {
	return p.origin, p.pending
}

func (p *Parser) floor(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	floor := int(r - '0')
	return floor, floor < p.floors
}

// Listen reads the keyboard until ctx is cancelled or the user quits with q or Ctrl-C,
// in which case ErrQuit is returned. Pressing p sends on pauseCh.
func Listen(ctx context.Context, floors int, callCh chan<- Call, pauseCh chan<- struct{}) error {
	keyEvents, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	parser := NewParser(floors)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-keyEvents:
			if ev.Err != nil {
				return fmt.Errorf("read key: %w", ev.Err)
			}
			switch {
			case ev.Key == keyboard.KeyCtrlC || ev.Rune == 'q':
				return ErrQuit
			case ev.Key == keyboard.KeyEsc:
				parser.Reset()
				slog.Debug("Call entry cleared")
				continue
			case ev.Rune == 'p':
				select {
				case pauseCh <- struct{}{}:
				case <-ctx.Done():
					return nil
				}
				continue
			}
			call, ok := parser.Feed(ev.Rune)
			if !ok {
				continue
			}
			select {
			case callCh <- call:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
