package physics

import (
	"github.com/chewxy/math32"
	"github.com/guiMendel/boteco-brawl-sub000/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Resolve applies friction, an impulse and a positional correction for one
// contact, then dispatches the callbacks. A pair is resolved at most once per
// tick, whichever side it is reported from.
func (w *World) Resolve(data CollisionData) {
	key := data.Key()
	if w.resolved[key] || w.resolved[key.Inverse()] {
		return
	}
	w.resolved[key] = true
	w.resolved[key.Inverse()] = true

	bodyA := data.Source.Rigidbody()
	bodyB := data.Other.Rigidbody()

	w.applyFriction(bodyA, bodyB)
	applyImpulse(data, bodyA, bodyB)
	separate(data, bodyA, bodyB)

	_, wasTouching := w.lastContacts[key]
	if !wasTouching {
		_, wasTouching = w.lastContacts[key.Inverse()]
	}
	w.contacts[key] = data

	notifyCollision(data, !wasTouching)
	notifyCollision(data.Inverse(), !wasTouching)
	w.Resolved.Invoke(data)
}

// applyFriction damps dynamic bodies in contact using the lower of the two
// friction coefficients.
func (w *World) applyFriction(a, b *components.Rigidbody) {
	var friction float32
	switch {
	case a != nil && b != nil:
		friction = math32.Min(a.Friction, b.Friction)
	case a != nil:
		friction = a.Friction
	case b != nil:
		friction = b.Friction
	default:
		return
	}
	friction = math32.Max(0, math32.Min(1, friction))
	decay := math32.Pow(1-friction, w.deltaTime)

	for _, body := range []*components.Rigidbody{a, b} {
		if body == nil || !body.IsDynamic() {
			continue
		}
		body.Velocity = rl.Vector2Scale(body.Velocity, decay)
		if rl.Vector2Length(body.Velocity) < w.config.FrictionCutoff {
			body.Velocity = rl.Vector2{}
		}
	}
}

func velocityOf(body *components.Rigidbody) rl.Vector2 {
	if body == nil || body.Kinematics == components.KinematicsStatic {
		return rl.Vector2{}
	}
	return body.Velocity
}

func averageElasticity(a, b *components.Rigidbody) float32 {
	switch {
	case a != nil && b != nil:
		return (a.Elasticity + b.Elasticity) / 2
	case a != nil:
		return a.Elasticity
	case b != nil:
		return b.Elasticity
	}
	return 0
}

func applyImpulse(data CollisionData, a, b *components.Rigidbody) {
	invA, invB := a.InverseMass(), b.InverseMass()
	if invA+invB == 0 {
		return
	}

	relative := rl.Vector2Subtract(velocityOf(a), velocityOf(b))
	approach := rl.Vector2DotProduct(relative, data.Normal)
	// Already separating.
	if approach >= 0 {
		return
	}

	j := -(1 + averageElasticity(a, b)) * approach / (invA + invB)
	impulse := rl.Vector2Scale(data.Normal, j)
	if invA > 0 {
		a.Velocity = rl.Vector2Add(a.Velocity, rl.Vector2Scale(impulse, invA))
	}
	if invB > 0 {
		b.Velocity = rl.Vector2Subtract(b.Velocity, rl.Vector2Scale(impulse, invB))
	}
}

// separate pushes the bodies apart along the normal, each moving by its share
// of the total inverse mass. An immovable side moves not at all.
func separate(data CollisionData, a, b *components.Rigidbody) {
	invA, invB := a.InverseMass(), b.InverseMass()
	total := invA + invB
	if total == 0 || data.Penetration <= 0 {
		return
	}
	if invA > 0 {
		a.GetGameObject().Translate(rl.Vector2Scale(data.Normal, data.Penetration*invA/total))
	}
	if invB > 0 {
		b.GetGameObject().Translate(rl.Vector2Scale(data.Normal, -data.Penetration*invB/total))
	}
}
