package systems

import (
	"log"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	cameraFocusQuery = donburi.NewQuery(filter.Contains(components.CameraFocus))
	playerQuery      = donburi.NewQuery(filter.Contains(tags.Player, components.Transform))
)

// SetCameraFocus points the camera at the player's head and, while a dialog
// target is set, at the target as a secondary focus. Completions delivered
// this frame clear the secondary focus after it was set, so the camera never
// lingers on a target for a frame after the dialogue ends.
//
// It panics unless there is exactly one camera and one player.
func SetCameraFocus(w donburi.World) {
	focus := components.CameraFocus.Get(single(w, cameraFocusQuery, "camera focus"))
	player := components.Transform.Get(single(w, playerQuery, "player"))
	target := DialogTarget(w)

	if e, ok := target.Get(); ok {
		if pos, ok := resolvePosition(w, target.Target); ok {
			focus.SetSecondary(pos)
		} else {
			log.Printf("Warning: dialog target %v no longer exists, dropping it", e)
			target.Clear()
			focus.ClearSecondary()
		}
	} else {
		focus.ClearSecondary()
	}

	focus.Target = player.Translation.Add(mgl64.Vec3{0, cfg.Player.Height / 2, 0})

	for range dialogueCompletions(w) {
		cameraFocusQuery.Each(w, func(entry *donburi.Entry) {
			components.CameraFocus.Get(entry).ClearSecondary()
		})
	}
}

// resolvePosition returns the translation of the referenced entity, or false
// if it is gone or has no transform.
func resolvePosition(w donburi.World, ref components.EntityRef) (mgl64.Vec3, bool) {
	entry, ok := ref.Resolve(w)
	if !ok || !entry.HasComponent(components.Transform) {
		return mgl64.Vec3{}, false
	}
	return components.Transform.Get(entry).Translation, true
}
