package physics

import (
	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
)

// detectTriggers finds trigger overlaps after all solid contacts were
// resolved. Triggers never push anything; they only receive callbacks.
func (w *World) detectTriggers(p partition) {
	for i, trigger := range p.triggers {
		if !trigger.IsEnabled() {
			continue
		}
		shape := place(trigger, trigger.WorldShape())

		for _, group := range p.dynamic {
			w.triggerAgainst(shape, group)
		}
		// A static trigger never needs to test other statics.
		if body := trigger.Rigidbody(); body != nil && body.Kinematics != components.KinematicsStatic {
			for _, group := range p.static {
				w.triggerAgainst(shape, group)
			}
		}
		for _, group := range p.kinematic {
			w.triggerAgainst(shape, group)
		}

		for _, other := range p.triggers[i+1:] {
			if !other.IsEnabled() || sharesLineage(trigger, other) {
				continue
			}
			if _, ok := w.overlapsPlaced(shape, []placed{place(other, other.WorldShape())}); ok {
				w.recordTrigger(TriggerCollisionData{Source: trigger, Other: other})
			}
		}
	}
}

func (w *World) triggerAgainst(trigger placed, group ColliderGroup) {
	var candidates []placed
	for _, p := range placeAll(group.Colliders) {
		if !sharesLineage(trigger.collider, p.collider) {
			candidates = append(candidates, p)
		}
	}
	if other, ok := w.overlapsPlaced(trigger, candidates); ok {
		w.recordTrigger(TriggerCollisionData{Source: trigger.collider, Other: other})
	}
}

func (w *World) recordTrigger(data TriggerCollisionData) {
	key := data.Key()
	if _, seen := w.overlaps[key]; seen {
		return
	}
	if _, seen := w.overlaps[key.Inverse()]; seen {
		return
	}
	_, wasOverlapping := w.lastOverlaps[key]
	if !wasOverlapping {
		_, wasOverlapping = w.lastOverlaps[key.Inverse()]
	}
	w.overlaps[key] = data

	notifyTrigger(data, !wasOverlapping)
	notifyTrigger(data.Inverse(), !wasOverlapping)
}
