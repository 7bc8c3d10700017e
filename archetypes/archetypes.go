package archetypes

import (
	"github.com/automoto/orbwalk/components"
	"github.com/automoto/orbwalk/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.CameraFocus,
	)
	Npc = newArchetype(
		tags.Npc,
		components.Transform,
		components.YarnNode,
		components.Object,
		components.Sensor,
	)
	Orb = newArchetype(
		tags.Orb,
		components.Orb,
		components.Transform,
	)
	OrbLight = newArchetype(
		tags.OrbLight,
		components.PointLight,
		components.Transform,
		components.Parent,
	)
	DialogueRunner = newArchetype(
		tags.DialogueRunner,
		components.DialogueRunner,
	)
	Space = newArchetype(
		components.Space,
	)
	DialogState = newArchetype(
		components.DialogTarget,
		components.DialogueProject,
		components.DialogueCompletions,
	)
	InputState = newArchetype(
		components.Input,
		components.ActionsFrozen,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return w.Entry(w.Create(all...))
}
