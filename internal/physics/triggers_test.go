package physics

import (
	"testing"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerEnterStayExit(t *testing.T) {
	w := newTestWorld(1)
	zone, _ := newTrigger(w, "Zone", rl.Vector2{}, rl.Vector2{X: 2, Y: 2})
	body, _, _ := newBox(w, "Body", rl.Vector2{}, rl.Vector2{X: 1, Y: 1}, dynamic)
	zoneRec := attachRecorder(zone)
	bodyRec := attachRecorder(body)

	w.Step(0)
	assert.Equal(t, 1, zoneRec.triggerEnter)
	assert.Equal(t, 1, zoneRec.triggerStay)
	assert.Equal(t, 1, bodyRec.triggerEnter)
	assert.Equal(t, 1, bodyRec.triggerStay)

	w.Step(0)
	assert.Equal(t, 1, zoneRec.triggerEnter)
	assert.Equal(t, 2, zoneRec.triggerStay)

	body.Transform.Position = rl.Vector2{X: 10}
	w.Step(0)
	assert.Equal(t, 1, zoneRec.triggerExit)
	assert.Equal(t, 1, bodyRec.triggerExit)

	assert.Zero(t, bodyRec.stay, "triggers never produce solid contacts")
	assert.Empty(t, w.Contacts())
}

func TestTriggerDoesNotPushBodies(t *testing.T) {
	w := newTestWorld(1)
	newTrigger(w, "Zone", rl.Vector2{}, rl.Vector2{X: 2, Y: 2})
	body, rb, _ := newBox(w, "Body", rl.Vector2{X: 0.5}, rl.Vector2{X: 1, Y: 1}, dynamic)
	rb.Velocity.X = 1

	w.Step(0)
	assert.Equal(t, float32(0.5), body.Transform.Position.X)
	assert.Equal(t, float32(1), rb.Velocity.X)
}

func TestTriggerSkipsOwnLineage(t *testing.T) {
	w := newTestWorld(1)

	fighter := engine.NewGameObject("Fighter")
	fighter.AddComponent(components.NewRigidbody(components.KinematicsDynamic))
	fighter.AddComponent(components.NewBoxCollider(rl.Vector2{X: 1, Y: 1}, false))

	hitbox := engine.NewGameObject("Hitbox")
	fighter.AddChild(hitbox)
	hitboxRec := attachRecorder(hitbox)
	hitbox.AddComponent(components.NewBoxCollider(rl.Vector2{X: 4, Y: 4}, true))
	w.RegisterObject(fighter)

	_, _, target := newBox(w, "Target", rl.Vector2{X: 2}, rl.Vector2{X: 1, Y: 1}, nil)

	w.Step(0)

	require.Len(t, hitboxRec.triggers, 1)
	assert.Same(t, target, hitboxRec.triggers[0].Other)
	for _, data := range hitboxRec.triggers {
		assert.NotSame(t, fighter, data.Other.GetGameObject())
	}
}

func TestTriggerSkipsDescendants(t *testing.T) {
	w := newTestWorld(1)

	aura := engine.NewGameObject("Aura")
	aura.AddComponent(components.NewRigidbody(components.KinematicsKinematic))
	aura.AddComponent(components.NewBoxCollider(rl.Vector2{X: 6, Y: 6}, true))
	auraRec := attachRecorder(aura)

	shield := engine.NewGameObject("Shield")
	aura.AddChild(shield)
	shield.AddComponent(components.NewRigidbody(components.KinematicsDynamic))
	shield.AddComponent(components.NewBoxCollider(rl.Vector2{X: 1, Y: 1}, false))

	w.RegisterObject(aura)
	w.Step(0)

	assert.Zero(t, auraRec.triggerStay)
}

func TestTriggersDetectEachOther(t *testing.T) {
	w := newTestWorld(1)
	a, _ := newTrigger(w, "A", rl.Vector2{}, rl.Vector2{X: 2, Y: 2})
	b, _ := newTrigger(w, "B", rl.Vector2{X: 1}, rl.Vector2{X: 2, Y: 2})
	recA := attachRecorder(a)
	recB := attachRecorder(b)

	w.Step(0)

	assert.Equal(t, 1, recA.triggerEnter)
	assert.Equal(t, 1, recB.triggerEnter)
}

func TestStaticTriggerIgnoresStatics(t *testing.T) {
	w := newTestWorld(1)
	zone, _ := newTrigger(w, "Zone", rl.Vector2{}, rl.Vector2{X: 2, Y: 2})
	newBox(w, "Wall", rl.Vector2{}, rl.Vector2{X: 1, Y: 1}, nil)
	_, lift, _ := newBox(w, "Lift", rl.Vector2{X: 0.5}, rl.Vector2{X: 1, Y: 1}, kinematic)
	lift.Velocity = rl.Vector2{}
	rec := attachRecorder(zone)

	w.Step(0)

	require.Len(t, rec.triggers, 1)
	assert.Equal(t, "Lift", rec.triggers[0].Other.GetGameObject().Name)
}

func TestTriggerLayerFiltering(t *testing.T) {
	w := newTestWorld(1)
	zone, _ := newTrigger(w, "Zone", rl.Vector2{}, rl.Vector2{X: 2, Y: 2})
	zone.Layer = engine.LayerHitbox
	body, _, _ := newBox(w, "Body", rl.Vector2{}, rl.Vector2{X: 1, Y: 1}, dynamic)
	body.Layer = engine.LayerParticle
	rec := attachRecorder(zone)

	w.Layers().Disable(engine.LayerHitbox, engine.LayerParticle)
	w.Step(0)

	assert.Zero(t, rec.triggerStay)
}
