package factory

import (
	"math"

	"github.com/automoto/orbwalk/archetypes"
	"github.com/automoto/orbwalk/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the collision space covering the level's ground plane.
func CreateSpace(w donburi.World, width, depth float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(depth)), cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// CreateLevel records the level bounds.
func CreateLevel(w donburi.World, width, depth float64) *donburi.Entry {
	level := w.Entry(w.Create(components.Level))
	components.Level.SetValue(level, components.LevelData{Width: width, Depth: depth})
	return level
}

// newFootprint builds a square resolv object centred on (x, z) and adds it to
// the space if there is one.
func newFootprint(w donburi.World, owner *donburi.Entry, x, z, radius float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(x-radius, z-radius, radius*2, radius*2, resolvTags...)
	obj.Data = owner
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
