package systems

import (
	"github.com/automoto/orbwalk/components"
	"github.com/automoto/orbwalk/systems/factory"
	"github.com/automoto/orbwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var orbQuery = donburi.NewQuery(filter.Contains(tags.Orb, components.Orb, components.Transform))

// SpawnOrbs decorates newly created orbs with a glowing light and a pickup
// sensor. An orb that somehow already has a light gets a fresh one.
func SpawnOrbs(w donburi.World) {
	var fresh []*donburi.Entry
	orbQuery.Each(w, func(entry *donburi.Entry) {
		if !components.Orb.Get(entry).Decorated {
			fresh = append(fresh, entry)
		}
	})

	for _, orb := range fresh {
		data := components.Orb.Get(orb)
		if light, ok := data.Light.Resolve(w); ok {
			light.Remove()
		}

		light := factory.CreateOrbLight(w, orb)
		if !orb.HasComponent(components.Sensor) {
			factory.AttachOrbSensor(w, orb)
		}

		data = components.Orb.Get(orb)
		data.Light = components.Ref(light.Entity())
		data.Decorated = true
	}
}

// CollectOrbs picks up every orb whose sensor the player is standing in.
func CollectOrbs(w donburi.World) {
	playerQuery.Each(w, func(playerEntry *donburi.Entry) {
		if !playerEntry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(playerEntry).Object
		pos := components.Transform.Get(playerEntry).Translation

		for _, orb := range sensorHits(obj, pos, tags.ResolvPlayer, tags.ResolvSensor) {
			if !orb.HasComponent(tags.Orb) {
				continue
			}
			removeOrb(w, orb)
			if playerEntry.HasComponent(components.Player) {
				components.Player.Get(playerEntry).OrbsCollected++
			}
		}
	})
}

func removeOrb(w donburi.World, orb *donburi.Entry) {
	if light, ok := components.Orb.Get(orb).Light.Resolve(w); ok {
		light.Remove()
	}
	removeFootprint(w, orb)
	orb.Remove()
}

// removeFootprint takes an entity's object out of the collision space.
func removeFootprint(w donburi.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}
