package component

import (
	"github.com/milk9111/boxcontroller/component"
	"github.com/milk9111/boxcontroller/movement"
)

type Player struct {
	Controller *movement.Controller
}

var PlayerComponent = component.New[Player]("player")
