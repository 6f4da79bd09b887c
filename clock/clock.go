package clock

// Clock is the time source injected into the simulation. Values are seconds.
type Clock interface {
	// Elapsed is the time since the simulation started.
	Elapsed() float32
	// Delta is the length of the last tick.
	Delta() float32
}

// Manual is advanced explicitly. Tests use it for deterministic timing.
type Manual struct {
	elapsed float32
	delta   float32
}

var _ Clock = (*Manual)(nil)

func (m *Manual) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	m.delta = dt
	m.elapsed += dt
}

func (m *Manual) Elapsed() float32 { return m.elapsed }
func (m *Manual) Delta() float32   { return m.delta }

// Fixed steps by a constant 1/tps every Step, independent of wall time. It
// matches ebiten's fixed update rate.
type Fixed struct {
	step  float32
	ticks uint64
}

var _ Clock = (*Fixed)(nil)

func NewFixed(tps int) *Fixed {
	if tps <= 0 {
		tps = 60
	}
	return &Fixed{step: 1 / float32(tps)}
}

func (f *Fixed) Step() {
	f.ticks++
}

// Ticks is the number of steps taken.
func (f *Fixed) Ticks() uint64 { return f.ticks }

// Elapsed is computed from the tick count so it does not accumulate
// rounding error.
func (f *Fixed) Elapsed() float32 { return float32(float64(f.ticks) * float64(f.step)) }

func (f *Fixed) Delta() float32 {
	if f.ticks == 0 {
		return 0
	}
	return f.step
}
