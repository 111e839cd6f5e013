package physics

import (
	"fmt"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PairKey identifies an ordered pair of colliders.
type PairKey struct {
	Source, Other uint64
}

func (k PairKey) Inverse() PairKey {
	return PairKey{Source: k.Other, Other: k.Source}
}

// CollisionData describes a solid contact from Source's point of view.
// Normal points from Other toward Source: moving Source by Penetration along
// Normal separates the two.
type CollisionData struct {
	Normal      rl.Vector2
	Penetration float32
	Source      *components.Collider
	Other       *components.Collider
}

func (d CollisionData) Key() PairKey {
	return PairKey{Source: d.Source.ID(), Other: d.Other.ID()}
}

// Inverse returns the same contact seen from Other.
func (d CollisionData) Inverse() CollisionData {
	return CollisionData{
		Normal:      rl.Vector2Negate(d.Normal),
		Penetration: d.Penetration,
		Source:      d.Other,
		Other:       d.Source,
	}
}

func (d CollisionData) String() string {
	return fmt.Sprintf("%v -> %v (normal %.2f,%.2f depth %.3f)", d.Source, d.Other, d.Normal.X, d.Normal.Y, d.Penetration)
}

// TriggerCollisionData describes an overlap involving at least one trigger.
type TriggerCollisionData struct {
	Source *components.Collider
	Other  *components.Collider
}

func (d TriggerCollisionData) Key() PairKey {
	return PairKey{Source: d.Source.ID(), Other: d.Other.ID()}
}

func (d TriggerCollisionData) Inverse() TriggerCollisionData {
	return TriggerCollisionData{Source: d.Other, Other: d.Source}
}
