// Package leveldata turns a TMX map into world-space spawn data. It has no
// dependencies on ebitengine, donburi or resolv; pure data only.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Layout is everything a scene needs to populate a level. Tiled's X/Y map
// onto world X/Z; Y is the elevation above the ground plane.
type Layout struct {
	Name        string
	Width       float64 // world units along X
	Depth       float64 // world units along Z
	PlayerSpawn mgl64.Vec3
	Npcs        []NpcSpawn
	Orbs        []mgl64.Vec3
}

// NpcSpawn is a character the player can talk to.
type NpcSpawn struct {
	Name     string
	Position mgl64.Vec3
	YarnNode string
}
