package factory

import (
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/leveldata"
	"github.com/yohamta/donburi"
)

// CreateFromLayout populates the world from a level layout: level bounds and
// collision space first, then camera, player, NPCs and orbs. It returns the player.
func CreateFromLayout(w donburi.World, layout *leveldata.Layout) *donburi.Entry {
	CreateLevel(w, layout.Width, layout.Depth)
	CreateSpace(w, layout.Width, layout.Depth, cfg.Level.CellSize)

	player := CreatePlayer(w, layout.PlayerSpawn)
	CreateCamera(w, layout.PlayerSpawn)

	for _, npc := range layout.Npcs {
		CreateNpc(w, npc.Position, npc.YarnNode)
	}
	for _, pos := range layout.Orbs {
		CreateOrb(w, pos)
	}
	return player
}
