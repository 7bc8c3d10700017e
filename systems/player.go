package systems

import (
	"math"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdatePlayer walks the player across the ground plane from this frame's
// input. Nothing moves while actions are frozen.
func UpdatePlayer(w donburi.World) {
	if ActionsFrozen(w).IsFrozen() {
		return
	}
	input := components.Input.Get(GetOrCreateInputState(w))

	dir := movementInput(input)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()

	playerQuery.Each(w, func(playerEntry *donburi.Entry) {
		transform := components.Transform.Get(playerEntry)
		next := transform.Translation.Add(dir.Mul(cfg.Player.MoveSpeed))
		transform.Translation = clampToLevel(w, next)

		if playerEntry.HasComponent(components.Player) {
			components.Player.Get(playerEntry).Facing = dir
		}
	})
}

func movementInput(input *components.InputData) mgl64.Vec3 {
	var dir mgl64.Vec3
	if input.Pressed(cfg.ActionMoveForward) {
		dir[2]--
	}
	if input.Pressed(cfg.ActionMoveBack) {
		dir[2]++
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		dir[0]--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir[0]++
	}
	return dir
}

// clampToLevel keeps the player's footprint inside the level bounds.
func clampToLevel(w donburi.World, p mgl64.Vec3) mgl64.Vec3 {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return p
	}
	level := components.Level.Get(levelEntry)
	r := cfg.Player.Radius
	p[0] = math.Max(r, math.Min(level.Width-r, p[0]))
	p[2] = math.Max(r, math.Min(level.Depth-r, p[2]))
	return p
}
