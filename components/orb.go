package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// OrbData marks a pickup orb. Decorated is set once the light and sensor
// have been attached; Light is the child light entity.
type OrbData struct {
	Decorated bool
	Light     EntityRef
}

var Orb = donburi.NewComponentType[OrbData]()

type PointLightData struct {
	Intensity      float64
	Radius         float64
	Color          color.RGBA
	ShadowsEnabled bool
}

var PointLight = donburi.NewComponentType[PointLightData]()

// SensorData is a vertical cylinder collider that only detects overlaps.
// Its footprint lives in the resolv space as an Object on the same entity.
type SensorData struct {
	Radius  float64
	Height  float64
	Detects []string // resolv tags of the layers this sensor reacts to
}

var Sensor = donburi.NewComponentType[SensorData]()

// ParentData links a child entity (e.g. an orb's light) to its owner.
type ParentData struct {
	Parent EntityRef
}

var Parent = donburi.NewComponentType[ParentData]()
