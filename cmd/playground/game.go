package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/boxcontroller/clock"
	"github.com/milk9111/boxcontroller/common"
	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/ecs/system"
	"github.com/milk9111/boxcontroller/input"
	"github.com/milk9111/boxcontroller/physics"
	"github.com/milk9111/boxcontroller/prefabs"
	"github.com/milk9111/boxcontroller/sim"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tps        = 60
	// pixels per world unit in the top-down view
	zoom = 16
)

type Game struct {
	debug  bool
	paused bool

	input   *input.Ebiten
	clock   *clock.Fixed
	sim     *sim.Sim
	watcher *prefabs.Watcher
}

func NewGame(debug, watch bool, pub system.Publisher) (*Game, error) {
	in := input.NewEbiten()
	clk := clock.NewFixed(tps)
	s, err := sim.New(in, clk, pub)
	if err != nil {
		return nil, err
	}
	g := &Game{debug: debug, input: in, clock: clk, sim: s}
	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if g.watcher != nil {
		if names := g.watcher.Drain(); len(names) > 0 {
			if err := g.sim.Reload(names); err != nil {
				log.Print(err)
			}
		}
	}
	if g.paused {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Controller().Respawn()
	}

	g.input.Update()
	g.clock.Step()
	g.sim.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	center := mgl32.Vec3{}
	ctrl := g.sim.Controller()
	if ctrl != nil {
		center = ctrl.Position()
	}

	g.sim.Physics.Each(func(b physics.Body) {
		clr := colornames.Lightslategray
		if b.Tag == physics.TagPlayer {
			clr = colornames.Crimson
		}
		if b.Event.Status.Touching() {
			clr = colornames.Gold
		}
		drawBox(screen, b, center, clr)
		if g.debug && b.Event.Status.Touching() {
			p := project(b.Event.Point, center)
			n := project(b.Event.Point.Add(b.Event.Normal.Mul(2)), center)
			vector.StrokeLine(screen, p.X(), p.Y(), n.X(), n.Y(), 2, colornames.Lime, true)
		}
	})

	if _, cam, ok := ecs.First(g.sim.World, component.CameraComponent); ok && ctrl != nil {
		tip := project(center.Add(cam.Basis.Forward.Mul(3)), center)
		c := project(center, center)
		vector.StrokeLine(screen, c.X(), c.Y(), tip.X(), tip.Y(), 2, colornames.White, true)
	}

	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) hud() string {
	s := fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if g.paused {
		s += "  [paused]"
	}
	ctrl := g.sim.Controller()
	if ctrl == nil {
		return s
	}
	p := ctrl.Position()
	s += fmt.Sprintf("\nstate: %s  speed: %.2f  grounded: %v\npos: %.2f %.2f %.2f",
		ctrl.State().Name(), ctrl.Speed(), ctrl.Grounded(), p.X(), p.Y(), p.Z())
	if g.debug {
		for _, c := range g.sim.Telemetry.Last().Contacts {
			s += fmt.Sprintf("\ncontact %s -> %s: %s (%.3f)", c.Entity, c.Other, c.Status, c.Depth)
		}
		d := ctrl.Diagnostics()
		s += fmt.Sprintf("\nground: %s  nudges: %d  stuck: %d  respawns: %d",
			ctrl.GroundContact().Status, d.DepenetrationNudges, d.DepenetrationFailures, d.Respawns)
	}
	return s
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// drawBox draws the twelve edges of a body seen from above, x to the right
// and z down the screen.
func drawBox(screen *ebiten.Image, b physics.Body, center mgl32.Vec3, clr color.Color) {
	var corners [8]mgl32.Vec2
	q := common.EulerToQuat(b.Transform.Rotation)
	for i := range corners {
		local := mgl32.Vec3{-1, -1, -1}
		if i&1 != 0 {
			local[0] = 1
		}
		if i&2 != 0 {
			local[2] = 1
		}
		if i&4 != 0 {
			local[1] = 1
		}
		s := b.Transform.Scale
		local = mgl32.Vec3{local.X() * s.X(), local.Y() * s.Y(), local.Z() * s.Z()}
		corners[i] = project(q.Rotate(local).Add(b.Transform.Position), center)
	}
	for _, e := range boxEdges {
		a, c := corners[e[0]], corners[e[1]]
		vector.StrokeLine(screen, a.X(), a.Y(), c.X(), c.Y(), 1, clr, true)
	}
}

func project(p, center mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{
		baseWidth/2 + (p.X()-center.X())*zoom,
		baseHeight/2 + (p.Z()-center.Z())*zoom,
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
