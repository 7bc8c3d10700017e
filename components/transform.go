package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the 3D world. Y is up; the ground plane is XZ.
type TransformData struct {
	Translation mgl64.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
