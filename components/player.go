package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing        mgl64.Vec3 // unit vector on the XZ plane
	OrbsCollected int
}

var Player = donburi.NewComponentType[PlayerData]()
