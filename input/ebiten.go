package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings maps each control to WASD, space and left shift.
func DefaultBindings() map[Key][]ebiten.Key {
	return map[Key][]ebiten.Key{
		KeyForward: {ebiten.KeyW, ebiten.KeyArrowUp},
		KeyBack:    {ebiten.KeyS, ebiten.KeyArrowDown},
		KeyLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
		KeyRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
		KeyJump:    {ebiten.KeySpace},
		KeyCrouch:  {ebiten.KeyShiftLeft, ebiten.KeyC},
	}
}

// Ebiten polls the keyboard and cursor through ebiten. Call Update once per
// ebiten update before the simulation tick reads it.
type Ebiten struct {
	Bindings map[Key][]ebiten.Key
	// MouseScale converts cursor pixels into look units.
	MouseScale float32

	held    [keyCount]bool
	pressed [keyCount]bool
	mouse   mgl32.Vec2

	lastX, lastY int
	primed       bool
}

var _ Input = (*Ebiten)(nil)

func NewEbiten() *Ebiten {
	return &Ebiten{Bindings: DefaultBindings(), MouseScale: 0.1}
}

func (e *Ebiten) Update() {
	for k := Key(0); k < keyCount; k++ {
		var held, pressed bool
		for _, ek := range e.Bindings[k] {
			held = held || ebiten.IsKeyPressed(ek)
			pressed = pressed || inpututil.IsKeyJustPressed(ek)
		}
		e.held[k] = held
		e.pressed[k] = pressed
	}

	x, y := ebiten.CursorPosition()
	if !e.primed {
		e.lastX, e.lastY = x, y
		e.primed = true
	}
	e.mouse = mgl32.Vec2{float32(x - e.lastX), float32(y - e.lastY)}.Mul(e.MouseScale)
	e.lastX, e.lastY = x, y
}

func (e *Ebiten) KeyHeld(k Key) bool {
	return k < keyCount && e.held[k]
}

func (e *Ebiten) KeyPressed(k Key) bool {
	return k < keyCount && e.pressed[k]
}

func (e *Ebiten) MouseDelta() mgl32.Vec2 {
	return e.mouse
}
