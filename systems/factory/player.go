package factory

import (
	"github.com/automoto/orbwalk/archetypes"
	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, pos mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Transform.SetValue(player, components.TransformData{Translation: pos})
	components.Player.SetValue(player, components.PlayerData{
		Facing: mgl64.Vec3{0, 0, -1},
	})

	obj := newFootprint(w, player, pos.X(), pos.Z(), cfg.Player.Radius, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	return player
}
