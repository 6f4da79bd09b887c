package input

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Key is a logical control, independent of the device that produces it.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyJump
	KeyCrouch
	keyCount
)

var keyNames = [keyCount]string{
	KeyForward: "forward",
	KeyBack:    "back",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyJump:    "jump",
	KeyCrouch:  "crouch",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey maps a control name such as "jump" to its Key.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range keyNames {
		if s == n {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("input: unknown key %q", name)
}

// Input is the polled input capability read once per tick.
type Input interface {
	// KeyHeld reports whether the key is down this tick.
	KeyHeld(Key) bool
	// KeyPressed reports whether the key went from up to down this tick.
	KeyPressed(Key) bool
	// MouseDelta is the mouse movement since the previous tick.
	MouseDelta() mgl32.Vec2
}

// State is an Input fed by explicit calls. Hosts and tests press and release
// keys during a tick and call EndTick once the tick has consumed them.
type State struct {
	down    [keyCount]bool
	pressed [keyCount]bool
	mouse   mgl32.Vec2
}

var _ Input = (*State)(nil)

func (s *State) Press(k Key) {
	s.Set(k, true)
}

func (s *State) Release(k Key) {
	s.Set(k, false)
}

// Set records the key's current level and latches a press edge.
func (s *State) Set(k Key, down bool) {
	if k >= keyCount {
		return
	}
	if down && !s.down[k] {
		s.pressed[k] = true
	}
	s.down[k] = down
}

// MoveMouse accumulates mouse movement for the current tick.
func (s *State) MoveMouse(delta mgl32.Vec2) {
	s.mouse = s.mouse.Add(delta)
}

// EndTick clears press edges and the accumulated mouse delta. Held keys stay
// held.
func (s *State) EndTick() {
	s.pressed = [keyCount]bool{}
	s.mouse = mgl32.Vec2{}
}

// Reset releases every key.
func (s *State) Reset() {
	*s = State{}
}

func (s *State) KeyHeld(k Key) bool {
	return k < keyCount && s.down[k]
}

func (s *State) KeyPressed(k Key) bool {
	return k < keyCount && s.pressed[k]
}

func (s *State) MouseDelta() mgl32.Vec2 {
	return s.mouse
}
