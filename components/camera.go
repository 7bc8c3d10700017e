package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CameraFocusData is what the camera looks at. Target is the primary focus
// point; SecondaryTarget is set while a dialog target holds the camera's attention.
type CameraFocusData struct {
	Target          mgl64.Vec3
	SecondaryTarget *mgl64.Vec3
}

// HasSecondary reports whether a secondary focus point is set.
func (c *CameraFocusData) HasSecondary() bool {
	return c.SecondaryTarget != nil
}

func (c *CameraFocusData) SetSecondary(p mgl64.Vec3) {
	c.SecondaryTarget = &p
}

func (c *CameraFocusData) ClearSecondary() {
	c.SecondaryTarget = nil
}

var CameraFocus = donburi.NewComponentType[CameraFocusData]()

// CameraData is the camera rig moved by UpdateCamera.
type CameraData struct {
	Eye    mgl64.Vec3
	LookAt mgl64.Vec3

	Blend      float64      // 0 = primary only, 1 = fully blended toward the secondary point
	BlendTween *gween.Tween // nil when not transitioning
	BlendingIn bool
	// LastSecondary keeps the last secondary point so the blend out eases
	// away from it after the focus is cleared.
	LastSecondary mgl64.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
