package physics

import (
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
)

// Components implement any of these to receive contact callbacks. Each side of
// a contact is notified with the data oriented from its own collider.

type CollisionHandler interface {
	OnCollision(data CollisionData)
}

type CollisionEnterHandler interface {
	OnCollisionEnter(data CollisionData)
}

type CollisionExitHandler interface {
	OnCollisionExit(data CollisionData)
}

type TriggerHandler interface {
	OnTriggerCollision(data TriggerCollisionData)
}

type TriggerEnterHandler interface {
	OnTriggerCollisionEnter(data TriggerCollisionData)
}

type TriggerExitHandler interface {
	OnTriggerCollisionExit(data TriggerCollisionData)
}

// recipients returns the collider's owner and, when different, its body's owner.
func recipients(owner, bodyOwner *engine.GameObject) []*engine.GameObject {
	var objs []*engine.GameObject
	if owner != nil && !owner.IsDestroyed() {
		objs = append(objs, owner)
	}
	if bodyOwner != nil && bodyOwner != owner && !bodyOwner.IsDestroyed() {
		objs = append(objs, bodyOwner)
	}
	return objs
}

func notifyCollision(data CollisionData, enter bool) {
	objs := recipients(data.Source.GetGameObject(), data.Source.BodyOwner())
	if enter {
		for _, obj := range objs {
			for _, comp := range obj.Components() {
				if handler, ok := comp.(CollisionEnterHandler); ok {
					handler.OnCollisionEnter(data)
				}
			}
		}
	}
	for _, obj := range objs {
		for _, comp := range obj.Components() {
			if handler, ok := comp.(CollisionHandler); ok {
				handler.OnCollision(data)
			}
		}
	}
}

func notifyCollisionExit(data CollisionData) {
	for _, obj := range recipients(data.Source.GetGameObject(), data.Source.BodyOwner()) {
		for _, comp := range obj.Components() {
			if handler, ok := comp.(CollisionExitHandler); ok {
				handler.OnCollisionExit(data)
			}
		}
	}
}

func notifyTrigger(data TriggerCollisionData, enter bool) {
	objs := recipients(data.Source.GetGameObject(), data.Source.BodyOwner())
	if enter {
		for _, obj := range objs {
			for _, comp := range obj.Components() {
				if handler, ok := comp.(TriggerEnterHandler); ok {
					handler.OnTriggerCollisionEnter(data)
				}
			}
		}
	}
	for _, obj := range objs {
		for _, comp := range obj.Components() {
			if handler, ok := comp.(TriggerHandler); ok {
				handler.OnTriggerCollision(data)
			}
		}
	}
}

func notifyTriggerExit(data TriggerCollisionData) {
	for _, obj := range recipients(data.Source.GetGameObject(), data.Source.BodyOwner()) {
		for _, comp := range obj.Components() {
			if handler, ok := comp.(TriggerExitHandler); ok {
				handler.OnTriggerCollisionExit(data)
			}
		}
	}
}
