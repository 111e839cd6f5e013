package physics

import (
	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
)

// CollisionFilter lists objects a single query must ignore. The zero value
// ignores nothing.
type CollisionFilter struct {
	ignored map[uint64]struct{}
}

func NewCollisionFilter(objs ...*engine.GameObject) CollisionFilter {
	var f CollisionFilter
	for _, obj := range objs {
		f.Ignore(obj)
	}
	return f
}

func (f *CollisionFilter) Ignore(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	f.ignoreUID(obj.UID)
}

func (f *CollisionFilter) ignoreUID(uid uint64) {
	if f.ignored == nil {
		f.ignored = make(map[uint64]struct{})
	}
	f.ignored[uid] = struct{}{}
}

// Excludes reports whether c belongs to an ignored object, directly or
// through its body.
func (f CollisionFilter) Excludes(c *components.Collider) bool {
	if len(f.ignored) == 0 {
		return false
	}
	if _, ok := f.ignored[c.GetGameObject().UID]; ok {
		return true
	}
	_, ok := f.ignored[c.BodyOwner().UID]
	return ok
}

func (f CollisionFilter) clone() CollisionFilter {
	var c CollisionFilter
	for uid := range f.ignored {
		c.ignoreUID(uid)
	}
	return c
}
