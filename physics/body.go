package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/common"
)

// Tag is the gameplay role of a body. It selects the collision groups.
type Tag uint8

const (
	TagPlayer Tag = iota + 1
	TagPlatform
)

func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagPlatform:
		return "platform"
	default:
		return "none"
	}
}

// Group is a collision group bit mask.
type Group uint32

const (
	GroupPlayer   Group = 1 << 0
	GroupPlatform Group = 1 << 1
	GroupAll      Group = ^Group(0)
)

// InteractionGroups pairs the groups a body belongs to with the groups it is
// allowed to touch.
type InteractionGroups struct {
	Memberships Group
	Filter      Group
}

// Test reports whether two bodies with these groups are tested against each other.
func (g InteractionGroups) Test(other InteractionGroups) bool {
	return g.Memberships&other.Filter != 0 && other.Memberships&g.Filter != 0
}

// Groups returns the interaction groups for a tag. Platforms only collide with
// the player group, so two platforms are never tested.
func (t Tag) Groups() InteractionGroups {
	switch t {
	case TagPlayer:
		return InteractionGroups{Memberships: GroupPlayer, Filter: GroupAll}
	case TagPlatform:
		return InteractionGroups{Memberships: GroupPlatform, Filter: GroupPlayer}
	default:
		return InteractionGroups{}
	}
}

type body struct {
	handle    Handle
	tag       Tag
	groups    InteractionGroups
	transform common.Transform
	box       box
	event     CollisionEvent
}

// Body is a read-only view of a registered body.
type Body struct {
	Handle    Handle
	Tag       Tag
	Transform common.Transform
	Event     CollisionEvent
}

// CheckScale returns ErrDegenerateScale unless every half-extent is finite
// and positive.
func CheckScale(scale mgl32.Vec3) error {
	if !validScale(scale) {
		return fmt.Errorf("%w: %v", ErrDegenerateScale, scale)
	}
	return nil
}

func validScale(scale mgl32.Vec3) bool {
	for _, v := range scale {
		if !common.Finite(v) || v <= 0 {
			return false
		}
	}
	return true
}
