package factory

import (
	"github.com/automoto/orbwalk/archetypes"
	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateNpc creates a character with a talk sensor that starts node when the
// player interacts within range.
func CreateNpc(w donburi.World, pos mgl64.Vec3, node string) *donburi.Entry {
	npc := archetypes.Npc.Spawn(w)

	components.Transform.SetValue(npc, components.TransformData{Translation: pos})
	components.YarnNode.SetValue(npc, components.YarnNodeData{Node: node})
	components.Sensor.SetValue(npc, components.SensorData{
		Radius:  cfg.Player.InteractRadius,
		Height:  cfg.Player.Height * 2,
		Detects: []string{tags.ResolvPlayer},
	})

	obj := newFootprint(w, npc, pos.X(), pos.Z(), cfg.Player.InteractRadius, tags.ResolvTalk)
	components.Object.SetValue(npc, components.ObjectData{Object: obj})

	return npc
}
