package systems

import (
	"math"

	"github.com/automoto/orbwalk/components"
	"github.com/automoto/orbwalk/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateCamera moves the camera rig toward its focus. The eye trails the
// primary focus; the look-at point eases part of the way toward the secondary
// focus while one is set and back again once it is cleared.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || !cameraEntry.HasComponent(components.CameraFocus) {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	focus := components.CameraFocus.Get(cameraEntry)

	if focus.HasSecondary() {
		camera.LastSecondary = *focus.SecondaryTarget
		if !camera.BlendingIn {
			startBlend(camera, 1)
			camera.BlendingIn = true
		}
	} else if camera.BlendingIn {
		startBlend(camera, 0)
		camera.BlendingIn = false
	}

	updateBlend(camera)

	primary := focus.Target
	toSecondary := camera.LastSecondary.Sub(primary)
	camera.LookAt = primary.Add(toSecondary.Mul(camera.Blend * config.Camera.SecondaryWeight))

	targetEye := primary.Add(config.Camera.Offset)
	camera.Eye = camera.Eye.Add(targetEye.Sub(camera.Eye).Mul(config.Camera.FollowSmoothing))
}

// startBlend begins easing Blend toward end. A blend interrupted half way
// takes proportionally less time to turn around.
func startBlend(camera *components.CameraData, end float64) {
	duration := config.Camera.FocusBlendSeconds * math.Abs(end-camera.Blend)
	if duration <= 0 {
		camera.Blend = end
		camera.BlendTween = nil
		return
	}
	camera.BlendTween = gween.New(float32(camera.Blend), float32(end), float32(duration), ease.InOutQuad)
}

func updateBlend(camera *components.CameraData) {
	if camera.BlendTween == nil {
		return
	}
	dt := float32(1.0 / float64(config.C.TPS))
	value, finished := camera.BlendTween.Update(dt)
	camera.Blend = float64(value)
	if finished {
		camera.BlendTween = nil
	}
}
