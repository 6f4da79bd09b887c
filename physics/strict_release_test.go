//go:build release

package physics

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/common"
)

func TestStaleHandleFallsBack(t *testing.T) {
	w := NewWorld()
	other := mustRegister(t, w, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, TagPlatform)
	h := mustRegister(t, w, mgl32.Vec3{3, 0, 0}, mgl32.Vec3{1, 1, 1}, TagPlayer)
	if err := w.Unregister(h); err != nil {
		t.Fatal(err)
	}

	if _, ok := w.Event(h); ok {
		t.Fatal("Event on stale handle reported ok")
	}
	if err := w.SyncPosition(h, common.NewTransform(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("SyncPosition err = %v", err)
	}
	if toi := w.TimeOfImpact(h, common.Transform{}, mgl32.Vec3{1, 0, 0}, other, 0.02); toi != 1 {
		t.Fatalf("toi = %v, want 1", toi)
	}
}
