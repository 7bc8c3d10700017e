package factory

import (
	"github.com/automoto/orbwalk/archetypes"
	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateOrb creates a bare orb. Its light and sensor are attached by
// systems.SpawnOrbs on the next update.
func CreateOrb(w donburi.World, pos mgl64.Vec3) *donburi.Entry {
	orb := archetypes.Orb.Spawn(w)
	components.Transform.SetValue(orb, components.TransformData{Translation: pos})
	components.Orb.SetValue(orb, components.OrbData{})
	return orb
}

// CreateOrbLight creates the glowing light that follows an orb.
func CreateOrbLight(w donburi.World, orb *donburi.Entry) *donburi.Entry {
	light := archetypes.OrbLight.Spawn(w)
	components.PointLight.SetValue(light, components.PointLightData{
		Intensity:      cfg.Orb.LightIntensity,
		Radius:         cfg.Orb.LightRadius,
		Color:          cfg.Orb.LightColor,
		ShadowsEnabled: cfg.Orb.ShadowsEnabled,
	})
	components.Transform.SetValue(light, *components.Transform.Get(orb))
	components.Parent.SetValue(light, components.ParentData{Parent: components.Ref(orb.Entity())})
	return light
}

// AttachOrbSensor adds the pickup sensor to an orb: a cylinder on the sensor
// layer that only reacts to the player.
func AttachOrbSensor(w donburi.World, orb *donburi.Entry) {
	pos := components.Transform.Get(orb).Translation

	orb.AddComponent(components.Sensor)
	components.Sensor.SetValue(orb, components.SensorData{
		Radius:  cfg.Orb.SensorRadius,
		Height:  cfg.Orb.SensorHeight,
		Detects: []string{tags.ResolvPlayer},
	})

	obj := newFootprint(w, orb, pos.X(), pos.Z(), cfg.Orb.SensorRadius, tags.ResolvSensor)
	orb.AddComponent(components.Object)
	components.Object.SetValue(orb, components.ObjectData{Object: obj})
}
