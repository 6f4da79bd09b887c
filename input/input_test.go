package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStateEdges(t *testing.T) {
	var s State

	s.Press(KeyJump)
	if !s.KeyHeld(KeyJump) || !s.KeyPressed(KeyJump) {
		t.Fatalf("first tick: held=%v pressed=%v", s.KeyHeld(KeyJump), s.KeyPressed(KeyJump))
	}
	s.EndTick()

	s.Press(KeyJump)
	if !s.KeyHeld(KeyJump) || s.KeyPressed(KeyJump) {
		t.Fatalf("second tick: held=%v pressed=%v", s.KeyHeld(KeyJump), s.KeyPressed(KeyJump))
	}
	s.EndTick()

	s.Release(KeyJump)
	s.Press(KeyJump)
	if !s.KeyPressed(KeyJump) {
		t.Fatal("release then press within a tick should latch an edge")
	}
}

func TestStateMouseAccumulates(t *testing.T) {
	var s State
	s.MoveMouse(mgl32.Vec2{1, 2})
	s.MoveMouse(mgl32.Vec2{3, -1})
	if got := s.MouseDelta(); got != (mgl32.Vec2{4, 1}) {
		t.Fatalf("MouseDelta = %v", got)
	}
	s.EndTick()
	if got := s.MouseDelta(); got != (mgl32.Vec2{}) {
		t.Fatalf("MouseDelta after EndTick = %v", got)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{in: "forward", want: KeyForward},
		{in: " Jump ", want: KeyJump},
		{in: "crouch", want: KeyCrouch},
		{in: "fire", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScriptDrivesKeys(t *testing.T) {
	src := []byte(`
update := func(tick, time) {
	held := ["forward"]
	if tick >= 2 {
		held = append(held, "jump")
	}
	return {held: held, mouse: [tick, 0.5]}
}
`)
	s, err := NewScript("test", src)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	var jumpPressed []bool
	for i := 0; i < 4; i++ {
		if err := s.Advance(float32(i) / 60); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if !s.KeyHeld(KeyForward) {
			t.Fatalf("tick %d: forward not held", i)
		}
		jumpPressed = append(jumpPressed, s.KeyPressed(KeyJump))
	}

	want := []bool{false, false, true, false}
	for i := range want {
		if jumpPressed[i] != want[i] {
			t.Fatalf("jump pressed = %v, want %v", jumpPressed, want)
		}
	}
	if got := s.MouseDelta(); got != (mgl32.Vec2{3, 0.5}) {
		t.Fatalf("MouseDelta = %v", got)
	}
}

func TestScriptUnknownKey(t *testing.T) {
	s, err := NewScript("bad", []byte(`update := func(tick, time) { return {held: ["dance"]} }`))
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if err := s.Advance(0); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript("broken", []byte(`update := func(`)); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestScriptSeesElapsedTime(t *testing.T) {
	s, err := NewScript("clock", []byte(`
update := func(tick, time) {
	return {mouse: [time * 2, tick]}
}
`))
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Advance(0.25 * float32(i)); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if got := s.MouseDelta(); got != (mgl32.Vec2{1, 2}) {
		t.Fatalf("MouseDelta = %v, want [1 2]", got)
	}
}
