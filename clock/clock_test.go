package clock

import "testing"

func TestManual(t *testing.T) {
	var m Manual
	m.Advance(0.25)
	m.Advance(0.5)
	if m.Elapsed() != 0.75 || m.Delta() != 0.5 {
		t.Fatalf("elapsed=%v delta=%v", m.Elapsed(), m.Delta())
	}
	m.Advance(-1)
	if m.Elapsed() != 0.75 || m.Delta() != 0 {
		t.Fatalf("negative advance: elapsed=%v delta=%v", m.Elapsed(), m.Delta())
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		name  string
		tps   int
		steps int
		want  float32
	}{
		{name: "sixty", tps: 60, steps: 60, want: 1},
		{name: "default", tps: 0, steps: 30, want: 0.5},
		{name: "thirty", tps: 30, steps: 45, want: 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFixed(tt.tps)
			if f.Delta() != 0 {
				t.Fatalf("Delta before first step = %v", f.Delta())
			}
			for i := 0; i < tt.steps; i++ {
				f.Step()
			}
			if d := f.Elapsed() - tt.want; d > 1e-5 || d < -1e-5 {
				t.Fatalf("Elapsed = %v, want %v", f.Elapsed(), tt.want)
			}
		})
	}
}
