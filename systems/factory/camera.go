package factory

import (
	"github.com/automoto/orbwalk/archetypes"
	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateCamera creates the in-game camera already looking at lookAt.
func CreateCamera(w donburi.World, lookAt mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Eye:    lookAt.Add(cfg.Camera.Offset),
		LookAt: lookAt,
	})
	components.CameraFocus.SetValue(camera, components.CameraFocusData{Target: lookAt})
	return camera
}
