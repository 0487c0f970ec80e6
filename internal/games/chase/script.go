package chase

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Script is a recorded input sequence for headless runs.
//
//	ticks: 120
//	events:
//	  - {tick: 0, kind: key_down, key: right}
//	  - {tick: 10, kind: pointer_move, x: 300, y: 40}
//	  - {tick: 10, kind: pointer_down}
type Script struct {
	Ticks  int           `yaml:"ticks"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one input event delivered before the given tick runs.
// Kind may also be "pause" or "restart" for platform actions.
type ScriptEvent struct {
	Tick int     `yaml:"tick"`
	Kind string  `yaml:"kind"`
	Key  string  `yaml:"key,omitempty"`
	X    float64 `yaml:"x,omitempty"`
	Y    float64 `yaml:"y,omitempty"`
}

var scriptActions = map[string]core.Action{
	"pause":   core.ActionPause,
	"restart": core.ActionRestart,
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	sc, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return sc, nil
}

// ParseScript decodes a script and validates its events.
// Events are ordered by tick; events sharing a tick keep file order.
func ParseScript(data []byte) (Script, error) {
	var sc Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Script{}, err
	}

	var errs []error
	for i, ev := range sc.Events {
		if ev.Tick < 0 {
			errs = append(errs, fmt.Errorf("event %d: negative tick %d", i, ev.Tick))
		}
		if _, ok := scriptActions[ev.Kind]; ok {
			continue
		}
		kind, ok := core.ParseEventKind(ev.Kind)
		if !ok {
			errs = append(errs, fmt.Errorf("event %d: unknown kind %q", i, ev.Kind))
			continue
		}
		if (kind == core.EventKeyDown || kind == core.EventKeyUp) && ev.Key == "" {
			errs = append(errs, fmt.Errorf("event %d: %s needs a key", i, ev.Kind))
		}
	}
	if sc.Ticks < 0 {
		errs = append(errs, fmt.Errorf("negative ticks %d", sc.Ticks))
	}
	if err := errors.Join(errs...); err != nil {
		return Script{}, err
	}

	slices.SortStableFunc(sc.Events, func(a, b ScriptEvent) int {
		return cmp.Compare(a.Tick, b.Tick)
	})

	// Run at least until the last event has been delivered
	if len(sc.Events) > 0 {
		sc.Ticks = max(sc.Ticks, sc.Events[len(sc.Events)-1].Tick+1)
	}
	return sc, nil
}

// Frames expands the script into one input frame per tick.
// Events scheduled at or beyond n are dropped.
func (sc Script) Frames(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
	}
	for _, ev := range sc.Events {
		if ev.Tick >= n {
			continue
		}
		f := &frames[ev.Tick]
		if a, ok := scriptActions[ev.Kind]; ok {
			f.Set(a)
			continue
		}
		kind, _ := core.ParseEventKind(ev.Kind)
		f.Push(core.InputEvent{Kind: kind, Key: ev.Key, X: ev.X, Y: ev.Y})
	}
	return frames
}

// Replay runs the frames against g, calling observe after every tick.
func Replay(g *Game, frames []core.InputFrame, observe func(tick int, g *Game)) {
	for i, in := range frames {
		g.Step(in)
		if observe != nil {
			observe(i, g)
		}
	}
}
