// Package render draws the world top-down with the camera's look-at point at
// the centre of the screen.
package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/fonts"
	"github.com/automoto/orbwalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var groundColor = color.RGBA{R: 30, G: 50, B: 30, A: 255}

// view maps ground-plane positions to screen pixels.
type view struct {
	centre mgl64.Vec3
	w, h   float64
}

func newView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		centre: camera.LookAt,
		w:      float64(screen.Bounds().Dx()),
		h:      float64(screen.Bounds().Dy()),
	}, true
}

func (v view) project(p mgl64.Vec3) (float32, float32) {
	ppu := cfg.Level.PixelsPerUnit
	x := v.w/2 + (p.X()-v.centre.X())*ppu
	y := v.h/2 + (p.Z()-v.centre.Z())*ppu
	return float32(x), float32(y)
}

func scale(units float64) float32 {
	return float32(units * cfg.Level.PixelsPerUnit)
}

// DrawWorld renders the ground, NPCs, orbs and the player.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		x, y := v.project(mgl64.Vec3{})
		vector.FillRect(screen, x, y, scale(level.Width), scale(level.Depth), groundColor, false)
	}

	target, hasTarget := components.EntityRef{}, false
	if stateEntry, ok := components.DialogTarget.First(e.World); ok {
		target = components.DialogTarget.Get(stateEntry).Target
		hasTarget = target.IsSet()
	}

	tags.OrbLight.Each(e.World, func(entry *donburi.Entry) {
		light := components.PointLight.Get(entry)
		x, y := v.project(components.Transform.Get(entry).Translation)
		glow := light.Color
		glow.A = 80
		vector.FillCircle(screen, x, y, scale(light.Radius), glow, true)
	})

	tags.Orb.Each(e.World, func(entry *donburi.Entry) {
		x, y := v.project(components.Transform.Get(entry).Translation)
		vector.FillCircle(screen, x, y, scale(0.3), cfg.BrightGreen, true)
	})

	tags.Npc.Each(e.World, func(entry *donburi.Entry) {
		x, y := v.project(components.Transform.Get(entry).Translation)
		vector.FillCircle(screen, x, y, scale(cfg.Player.Radius), cfg.LightBlue, true)
		if hasTarget {
			if te, ok := target.Entity(); ok && te == entry.Entity() {
				vector.StrokeCircle(screen, x, y, scale(cfg.Player.Radius*1.6), 2, cfg.Orange, true)
			}
		}
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Translation
		x, y := v.project(pos)
		vector.FillCircle(screen, x, y, scale(cfg.Player.Radius), cfg.Yellow, true)

		facing := components.Player.Get(entry).Facing
		fx, fy := v.project(pos.Add(facing.Mul(cfg.Player.Radius * 1.5)))
		vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.White, true)
	})
}

// DrawSensors outlines sensor cylinders when sensor debugging is on.
func DrawSensors(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowSensors {
		return
	}
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}

	components.Sensor.Each(e.World, func(entry *donburi.Entry) {
		sensor := components.Sensor.Get(entry)
		x, y := v.project(components.Transform.Get(entry).Translation)
		vector.StrokeCircle(screen, x, y, scale(sensor.Radius), 1, color.RGBA{0, 255, 255, 255}, false)
	})

	// Square footprints as seen by resolv
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x, y := v.project(mgl64.Vec3{obj.X, 0, obj.Y})
			vector.StrokeRect(screen, x, y, scale(obj.W), scale(obj.H), 1, color.RGBA{100, 100, 100, 255}, false)
		}
	}
}

// DrawHUD shows the orb count in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	text.Draw(screen, fmt.Sprintf("ORBS %d", player.OrbsCollected), fonts.Mono.Get(), 8, 16, cfg.White)
}
