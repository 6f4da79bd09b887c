package component

import "github.com/milk9111/boxcontroller/component"

// Name labels an entity for logs and telemetry.
type Name struct {
	Value string
}

var NameComponent = component.New[Name]("name")

type PlayerTag struct{}

var PlayerTagComponent = component.New[PlayerTag]("player_tag")
