// Command headless runs the simulation at a fixed step without a window,
// driving the player with a tengo input script.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/milk9111/boxcontroller/clock"
	"github.com/milk9111/boxcontroller/ecs/system"
	"github.com/milk9111/boxcontroller/input"
	"github.com/milk9111/boxcontroller/prefabs"
	"github.com/milk9111/boxcontroller/sim"
	"github.com/milk9111/boxcontroller/telemetry"
)

func main() {
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	tps := flag.Int("tps", 60, "ticks per simulated second")
	script := flag.String("script", "walk_and_jump", "input script in prefabs/scripts (name or path)")
	wsAddr := flag.String("ws", "", "serve telemetry snapshots over websocket on this address")
	realtime := flag.Bool("realtime", false, "pace ticks at wall-clock speed")
	every := flag.Int("log-every", 60, "log player state every n ticks (0 disables)")
	flag.Parse()

	src, err := loadScript(*script)
	if err != nil {
		log.Fatalf("load script %s: %v", *script, err)
	}
	in, err := input.NewScript(*script, src)
	if err != nil {
		log.Fatal(err)
	}

	var pub system.Publisher
	if *wsAddr != "" {
		hub := telemetry.NewHub()
		defer hub.Close()
		go func() {
			log.Printf("telemetry on ws://%s/", *wsAddr)
			if err := http.ListenAndServe(*wsAddr, hub); err != nil {
				log.Printf("telemetry: %v", err)
			}
		}()
		pub = hub
	}

	clk := clock.NewFixed(*tps)
	s, err := sim.New(in, clk, pub)
	if err != nil {
		log.Fatal(err)
	}

	var pace *time.Ticker
	if *realtime {
		pace = time.NewTicker(time.Second / time.Duration(*tps))
		defer pace.Stop()
	}

	for i := 1; i <= *ticks; i++ {
		if pace != nil {
			<-pace.C
		}
		clk.Step()
		if err := in.Advance(clk.Elapsed()); err != nil {
			log.Fatal(err)
		}
		s.Step()

		if *every > 0 && i%*every == 0 {
			c := s.Controller()
			p := c.Position()
			log.Printf("tick %d: state=%s speed=%.2f grounded=%v pos=(%.2f, %.2f, %.2f)",
				i, c.State().Name(), c.Speed(), c.Grounded(), p.X(), p.Y(), p.Z())
		}
	}

	d := s.Controller().Diagnostics()
	log.Printf("done: %d ticks, %d nudges, %d stuck, %d respawns",
		d.Ticks, d.DepenetrationNudges, d.DepenetrationFailures, d.Respawns)
}

// loadScript reads a script path directly when it exists, otherwise from the
// prefab scripts.
func loadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return prefabs.LoadScript(name)
}
