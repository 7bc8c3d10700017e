package systems

import (
	"math"
	"slices"

	"github.com/automoto/orbwalk/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// sensorHits returns the sensor entries of the given resolv layer whose
// cylinders contain pos and which react to the mover's layer. The resolv
// check is only a broadphase over the square footprints.
func sensorHits(mover *resolv.Object, pos mgl64.Vec3, moverLayer, sensorLayer string) []*donburi.Entry {
	if mover == nil || mover.Space == nil {
		return nil
	}
	collision := mover.Check(0, 0, sensorLayer)
	if collision == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, obj := range collision.ObjectsByTags(sensorLayer) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Sensor) {
			continue
		}
		if sensorContains(entry, pos, moverLayer) {
			hits = append(hits, entry)
		}
	}
	return hits
}

// sensorContains reports whether pos lies in the sensor's vertical cylinder
// and the sensor detects layer.
func sensorContains(sensorEntry *donburi.Entry, pos mgl64.Vec3, layer string) bool {
	sensor := components.Sensor.Get(sensorEntry)
	if !slices.Contains(sensor.Detects, layer) {
		return false
	}
	center := components.Transform.Get(sensorEntry).Translation
	dx := pos.X() - center.X()
	dz := pos.Z() - center.Z()
	if dx*dx+dz*dz > sensor.Radius*sensor.Radius {
		return false
	}
	return math.Abs(pos.Y()-center.Y()) <= sensor.Height/2
}
