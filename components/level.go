package components

import "github.com/yohamta/donburi"

// LevelData holds the playable bounds of the loaded level on the XZ plane.
type LevelData struct {
	Width float64
	Depth float64
}

var Level = donburi.NewComponentType[LevelData]()
