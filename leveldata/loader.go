package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object group names in the TMX file.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupNpcs        = "Npcs"
	GroupOrbs        = "Orbs"
)

var ErrNoPlayerSpawn = errors.New("no player spawn point defined in map")

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS. unitsPerTile scales one Tiled tile to world units.
func Load(fsys fs.FS, tmxPath string, unitsPerTile float64) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth == 0 || levelMap.TileHeight == 0 {
		return nil, fmt.Errorf("load TMX %s: zero tile size", tmxPath)
	}

	scaleX := unitsPerTile / float64(levelMap.TileWidth)
	scaleZ := unitsPerTile / float64(levelMap.TileHeight)
	toWorld := func(o *tiled.Object) (mgl64.Vec3, error) {
		elevation := 0.0
		if s := o.Properties.GetString("elevation"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return mgl64.Vec3{}, fmt.Errorf("object %d elevation %q: %w", o.ID, s, err)
			}
			elevation = v
		}
		return mgl64.Vec3{o.X * scaleX, elevation, o.Y * scaleZ}, nil
	}

	layout := &Layout{
		Name:  tmxPath,
		Width: float64(levelMap.Width) * unitsPerTile,
		Depth: float64(levelMap.Height) * unitsPerTile,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				pos, err := toWorld(o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				// Only one player; the first spawn wins.
				if !spawnFound {
					layout.PlayerSpawn = pos
					spawnFound = true
				}
			}
		case GroupNpcs:
			for _, o := range og.Objects {
				pos, err := toWorld(o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				node := o.Properties.GetString("yarn_node")
				if node == "" {
					return nil, fmt.Errorf("load TMX %s: npc %q has no yarn_node", tmxPath, o.Name)
				}
				layout.Npcs = append(layout.Npcs, NpcSpawn{
					Name:     o.Name,
					Position: pos,
					YarnNode: node,
				})
			}
		case GroupOrbs:
			for _, o := range og.Objects {
				pos, err := toWorld(o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				layout.Orbs = append(layout.Orbs, pos)
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Sort NPCs left-to-right for a stable spawn order
	sort.SliceStable(layout.Npcs, func(i, j int) bool {
		return layout.Npcs[i].Position.X() < layout.Npcs[j].Position.X()
	})

	return layout, nil
}
