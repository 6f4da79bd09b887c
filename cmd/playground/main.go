package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boxcontroller/ecs/system"
	"github.com/milk9111/boxcontroller/telemetry"
)

func main() {
	debug := flag.Bool("debug", false, "draw contact normals and player diagnostics")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	wsAddr := flag.String("ws", "", "serve telemetry snapshots over websocket on this address")
	watch := flag.Bool("watch", true, "hot reload prefabs from disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
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

	game, err := NewGame(*debug, *watch, pub)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("boxcontroller playground")
	ebiten.SetTPS(tps)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
