package systems

import (
	"github.com/automoto/orbwalk/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every footprint to its entity's transform and
// re-registers it with the space.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		if e.HasComponent(components.Transform) {
			pos := components.Transform.Get(e).Translation
			obj.X = pos.X() - obj.W/2
			obj.Y = pos.Z() - obj.H/2
		}
		obj.Update()
	}
}
