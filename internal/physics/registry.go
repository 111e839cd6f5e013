package physics

import (
	"cmp"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
)

// ColliderGroup is every solid collider registered under one owner, together
// with the owner and the body they resolve to (nil for bodiless statics).
type ColliderGroup struct {
	OwnerID   uint64
	Owner     *engine.GameObject
	Body      *components.Rigidbody
	Colliders []*components.Collider
}

func (g ColliderGroup) mustNotBeEmpty() {
	if len(g.Colliders) == 0 {
		panic(fmt.Sprintf("physics: collider group for owner %d is empty", g.OwnerID))
	}
}

type registryEntry struct {
	owner     *engine.GameObject
	body      *components.Rigidbody
	colliders []*components.Collider
}

type triggerEntry struct {
	ownerID  uint64
	collider *components.Collider
}

// Registry partitions registered colliders by the kinematics of their body.
// It only holds references; the object hierarchy owns the colliders and the
// registry drops whatever has expired each time it is validated.
type Registry struct {
	classes  [3]map[uint64]*registryEntry // indexed by components.Kinematics
	triggers []triggerEntry
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.classes {
		r.classes[i] = make(map[uint64]*registryEntry)
	}
	return r
}

func classOf(body *components.Rigidbody) components.Kinematics {
	if body == nil {
		return components.KinematicsStatic
	}
	return body.Kinematics
}

// Register adds collider under ownerID. Triggers go to the trigger list;
// solid colliders are grouped by owner in the map matching their body.
func (r *Registry) Register(collider *components.Collider, ownerID uint64) {
	if collider == nil || collider.GetGameObject() == nil {
		panic("physics: cannot register a collider that is not attached to an object")
	}

	if collider.IsTrigger() {
		for _, t := range r.triggers {
			if t.collider == collider {
				return
			}
		}
		r.triggers = append(r.triggers, triggerEntry{ownerID: ownerID, collider: collider})
		return
	}

	body := collider.Rigidbody()
	entry := r.find(ownerID)
	if entry == nil {
		entry = &registryEntry{owner: collider.BodyOwner(), body: body}
		r.classes[classOf(body)][ownerID] = entry
	} else if entry.body != body {
		panic(fmt.Sprintf("physics: owner %d already registered with a different body", ownerID))
	}

	if !slices.Contains(entry.colliders, collider) {
		entry.colliders = append(entry.colliders, collider)
	}
	if body != nil {
		if !body.HasLastPosition() {
			body.RecordPosition()
		}
		body.DeriveMass()
	}
}

// Unregister forgets every collider registered under ownerID.
func (r *Registry) Unregister(ownerID uint64) {
	for _, class := range r.classes {
		delete(class, ownerID)
	}
	r.triggers = slices.DeleteFunc(r.triggers, func(t triggerEntry) bool {
		return t.ownerID == ownerID
	})
}

func (r *Registry) find(ownerID uint64) *registryEntry {
	for _, class := range r.classes {
		if entry, ok := class[ownerID]; ok {
			return entry
		}
	}
	return nil
}

// Len returns the number of solid and trigger colliders currently registered.
func (r *Registry) Len() (solid, triggers int) {
	for _, class := range r.classes {
		for _, entry := range class {
			solid += len(entry.colliders)
		}
	}
	return solid, len(r.triggers)
}

// partition is the validated content of the registry for one tick.
type partition struct {
	static    []ColliderGroup
	kinematic []ColliderGroup
	dynamic   []ColliderGroup
	triggers  []*components.Collider
}

// validate prunes expired colliders and owners, moves owners whose body
// changed kinematics, and returns the groups. Kinematic and dynamic groups are
// shuffled with rng; a nil rng leaves every class ordered by owner ID.
func (r *Registry) validate(rng *rand.Rand) partition {
	pruned := 0
	type move struct {
		ownerID  uint64
		from, to components.Kinematics
	}
	var moves []move

	for i, class := range r.classes {
		for ownerID, entry := range class {
			if entry.body != nil && !entry.body.Alive() {
				pruned += len(entry.colliders)
				delete(class, ownerID)
				continue
			}

			before := len(entry.colliders)
			entry.colliders = slices.DeleteFunc(entry.colliders, func(c *components.Collider) bool {
				return !c.Alive() || c.Rigidbody() != entry.body
			})
			if removed := before - len(entry.colliders); removed > 0 {
				pruned += removed
				if entry.body != nil {
					entry.body.DeriveMass()
				}
			}

			if len(entry.colliders) == 0 {
				delete(class, ownerID)
				continue
			}

			if target := classOf(entry.body); target != components.Kinematics(i) {
				moves = append(moves, move{ownerID: ownerID, from: components.Kinematics(i), to: target})
			}
		}
	}

	for _, m := range moves {
		entry := r.classes[m.from][m.ownerID]
		delete(r.classes[m.from], m.ownerID)
		r.classes[m.to][m.ownerID] = entry
		log.Printf("Physics: owner %d moved from %s to %s", m.ownerID, m.from, m.to)
	}

	before := len(r.triggers)
	r.triggers = slices.DeleteFunc(r.triggers, func(t triggerEntry) bool {
		return !t.collider.Alive()
	})
	pruned += before - len(r.triggers)

	if pruned > 0 {
		log.Printf("Physics: pruned %d expired colliders", pruned)
	}

	p := partition{
		static:    r.groups(components.KinematicsStatic),
		kinematic: r.groups(components.KinematicsKinematic),
		dynamic:   r.groups(components.KinematicsDynamic),
		triggers:  make([]*components.Collider, len(r.triggers)),
	}
	for i, t := range r.triggers {
		p.triggers[i] = t.collider
	}
	if rng != nil {
		shuffle(rng, p.kinematic)
		shuffle(rng, p.dynamic)
	}
	return p
}

// groups lists a class ordered by owner ID so shuffles only depend on the rng.
func (r *Registry) groups(kinematics components.Kinematics) []ColliderGroup {
	class := r.classes[kinematics]
	groups := make([]ColliderGroup, 0, len(class))
	for ownerID, entry := range class {
		groups = append(groups, ColliderGroup{
			OwnerID:   ownerID,
			Owner:     entry.owner,
			Body:      entry.body,
			Colliders: slices.Clone(entry.colliders),
		})
	}
	slices.SortFunc(groups, func(a, b ColliderGroup) int {
		return cmp.Compare(a.OwnerID, b.OwnerID)
	})
	return groups
}

// snapshot returns the live solid colliders without mutating the registry,
// for queries made outside of a step.
func (r *Registry) snapshot() []ColliderGroup {
	var all []ColliderGroup
	for kinematics := range r.classes {
		for _, group := range r.groups(components.Kinematics(kinematics)) {
			group.Colliders = slices.DeleteFunc(group.Colliders, func(c *components.Collider) bool {
				return !c.Alive()
			})
			if len(group.Colliders) > 0 {
				all = append(all, group)
			}
		}
	}
	return all
}

func (r *Registry) liveTriggers() []*components.Collider {
	var live []*components.Collider
	for _, t := range r.triggers {
		if t.collider.Alive() {
			live = append(live, t.collider)
		}
	}
	return live
}

func shuffle(rng *rand.Rand, groups []ColliderGroup) {
	rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})
}
