package systems

import (
	"testing"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestUpdateCameraBlendsTowardSecondaryAndBack(t *testing.T) {
	w, camera, _ := newScene(t, mgl64.Vec3{0, 0, 0})
	focus := focusOf(camera)
	rig := components.Camera.Get(camera)
	focus.Target = mgl64.Vec3{0, 1, 0}
	focus.SetSecondary(mgl64.Vec3{4, 1, 0})

	frames := int(cfg.Camera.FocusBlendSeconds*float64(cfg.C.TPS)) + 10

	UpdateCamera(w)
	assert.Greater(t, rig.Blend, 0.0)
	assert.Less(t, rig.Blend, 1.0)

	for i := 0; i < frames; i++ {
		UpdateCamera(w)
	}
	assert.InDelta(t, 1.0, rig.Blend, 1e-6)
	assert.Nil(t, rig.BlendTween)
	want := mgl64.Vec3{4 * cfg.Camera.SecondaryWeight, 1, 0}
	assert.InDelta(t, want.X(), rig.LookAt.X(), 1e-6)
	assert.InDelta(t, want.Y(), rig.LookAt.Y(), 1e-6)

	focus.ClearSecondary()
	for i := 0; i < frames; i++ {
		UpdateCamera(w)
	}
	assert.InDelta(t, 0.0, rig.Blend, 1e-6)
	assert.InDelta(t, 0.0, rig.LookAt.X(), 1e-6)
	assert.InDelta(t, 1.0, rig.LookAt.Y(), 1e-6)
}

func TestUpdateCameraEyeTrailsPrimaryFocus(t *testing.T) {
	w, camera, _ := newScene(t, mgl64.Vec3{0, 0, 0})
	rig := components.Camera.Get(camera)
	focusOf(camera).Target = mgl64.Vec3{10, 0, 0}

	UpdateCamera(w)
	first := rig.Eye.X()
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 10.0)

	for i := 0; i < 500; i++ {
		UpdateCamera(w)
	}
	want := mgl64.Vec3{10, 0, 0}.Add(cfg.Camera.Offset)
	assert.InDelta(t, want.X(), rig.Eye.X(), 1e-3)
	assert.InDelta(t, want.Y(), rig.Eye.Y(), 1e-3)
	assert.InDelta(t, want.Z(), rig.Eye.Z(), 1e-3)
}

func TestUpdateCameraReversesBlendMidway(t *testing.T) {
	w, camera, _ := newScene(t, mgl64.Vec3{0, 0, 0})
	focus := focusOf(camera)
	rig := components.Camera.Get(camera)
	focus.SetSecondary(mgl64.Vec3{2, 0, 0})

	for i := 0; i < 10; i++ {
		UpdateCamera(w)
	}
	mid := rig.Blend
	assert.Greater(t, mid, 0.0)

	focus.ClearSecondary()
	UpdateCamera(w)
	assert.Less(t, rig.Blend, mid)
	assert.False(t, rig.BlendingIn)
}
