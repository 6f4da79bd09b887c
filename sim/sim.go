// Package sim assembles the ECS world, physics world and systems that both
// hosts run.
package sim

import (
	"fmt"
	"log"

	"github.com/milk9111/boxcontroller/clock"
	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/ecs/entity"
	"github.com/milk9111/boxcontroller/ecs/system"
	"github.com/milk9111/boxcontroller/input"
	"github.com/milk9111/boxcontroller/movement"
	"github.com/milk9111/boxcontroller/physics"
	"github.com/milk9111/boxcontroller/prefabs"
)

type Sim struct {
	World     *ecs.World
	Physics   *physics.World
	Scheduler *ecs.Scheduler
	Telemetry *system.TelemetrySystem

	player    ecs.Entity
	platforms []ecs.Entity
}

// New loads the player and level prefabs and builds the systems in tick
// order: body sync, camera, player controller, contacts, telemetry. pub may
// be nil.
func New(in input.Input, clk clock.Clock, pub system.Publisher) (*Sim, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	levelSpec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}

	s := &Sim{
		World:   ecs.NewWorld(),
		Physics: physics.NewWorld(),
	}
	s.World.SetPhysicsWorld(s.Physics)

	if s.platforms, err = entity.LoadLevelToWorld(s.World, levelSpec); err != nil {
		return nil, err
	}
	if s.player, err = entity.NewPlayer(s.World, playerSpec); err != nil {
		return nil, err
	}
	if _, err := entity.NewCamera(s.World, playerSpec.Camera); err != nil {
		return nil, err
	}

	sync := system.NewBodySyncSystem()
	s.Telemetry = system.NewTelemetrySystem(pub, clk)
	s.Scheduler = ecs.NewScheduler(
		sync,
		system.NewCameraSystem(in, clk),
		system.NewPlayerControllerSystem(in, clk),
		system.NewContactSystem(sync),
		s.Telemetry,
	)
	return s, nil
}

// Step runs one tick.
func (s *Sim) Step() {
	s.Scheduler.Update(s.World)
}

func (s *Sim) Player() ecs.Entity { return s.player }

func (s *Sim) Controller() *movement.Controller {
	p, ok := ecs.Get(s.World, s.player, component.PlayerComponent)
	if !ok {
		return nil
	}
	return p.Controller
}

// Reload re-reads the prefab files named by a watcher. Player tuning is
// applied in place; a changed level replaces every platform.
func (s *Sim) Reload(names []string) error {
	for _, name := range names {
		switch name {
		case prefabs.PlayerFile:
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				return fmt.Errorf("reload %s: %w", name, err)
			}
			if err := entity.ApplyPlayerSpec(s.World, s.player, spec); err != nil {
				return fmt.Errorf("reload %s: %w", name, err)
			}
			log.Printf("reloaded %s", name)
		case prefabs.LevelFile:
			spec, err := prefabs.LoadLevelSpec()
			if err != nil {
				return fmt.Errorf("reload %s: %w", name, err)
			}
			platforms, err := entity.LoadLevelToWorld(s.World, spec)
			if err != nil {
				return fmt.Errorf("reload %s: %w", name, err)
			}
			entity.UnloadLevel(s.World, s.platforms)
			s.platforms = platforms
			log.Printf("reloaded %s: %d platforms", name, len(platforms))
		}
	}
	return nil
}
