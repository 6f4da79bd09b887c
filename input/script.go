package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
)

// scriptDispatch calls the script's update function with the tick counter and
// elapsed seconds. update returns a map with an optional "held" array of key
// names and an optional "mouse" [dx, dy] array.
const scriptDispatch = `
__out := update(__tick, __time)
`

// Script is an Input driven by a tengo script, used for headless runs and
// reproducible tests.
type Script struct {
	name     string
	compiled *tengo.Compiled
	state    State
	tick     int
}

var _ Input = (*Script)(nil)

// NewScript compiles src. name is only used in error messages.
func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), scriptDispatch...))
	if err := script.Add("__tick", 0); err != nil {
		return nil, fmt.Errorf("input: %s: %w", name, err)
	}
	if err := script.Add("__time", 0.0); err != nil {
		return nil, fmt.Errorf("input: %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

// Advance runs the script for the next tick. Press edges are derived from the
// previous tick's held keys.
func (s *Script) Advance(elapsed float32) error {
	s.state.EndTick()
	if err := s.compiled.Set("__tick", s.tick); err != nil {
		return err
	}
	if err := s.compiled.Set("__time", float64(elapsed)); err != nil {
		return err
	}
	s.tick++
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: run %s: %w", s.name, err)
	}

	out := s.compiled.Get("__out").Map()
	var held [keyCount]bool
	if names, ok := out["held"].([]interface{}); ok {
		for _, v := range names {
			name, ok := v.(string)
			if !ok {
				continue
			}
			k, err := ParseKey(name)
			if err != nil {
				return fmt.Errorf("input: %s tick %d: %w", s.name, s.tick-1, err)
			}
			held[k] = true
		}
	}
	for k := Key(0); k < keyCount; k++ {
		s.state.Set(k, held[k])
	}
	if m, ok := out["mouse"].([]interface{}); ok && len(m) == 2 {
		s.state.MoveMouse(mgl32.Vec2{toFloat32(m[0]), toFloat32(m[1])})
	}
	return nil
}

func toFloat32(v interface{}) float32 {
	switch n := v.(type) {
	case int64:
		return float32(n)
	case float64:
		return float32(n)
	default:
		return 0
	}
}

func (s *Script) KeyHeld(k Key) bool {
	return s.state.KeyHeld(k)
}

func (s *Script) KeyPressed(k Key) bool {
	return s.state.KeyPressed(k)
}

func (s *Script) MouseDelta() mgl32.Vec2 {
	return s.state.MouseDelta()
}
