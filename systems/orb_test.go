package systems

import (
	"testing"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/systems/factory"
	"github.com/automoto/orbwalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func countLights(w donburi.World) int {
	n := 0
	tags.OrbLight.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestSpawnOrbsDecoratesOnce(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{1, 0, 1})
	orb := factory.CreateOrb(w, mgl64.Vec3{10, 0, 10})

	SpawnOrbs(w)
	SpawnOrbs(w)

	require.Equal(t, 1, countLights(w))
	data := components.Orb.Get(orb)
	assert.True(t, data.Decorated)

	light, ok := data.Light.Resolve(w)
	require.True(t, ok)
	pl := components.PointLight.Get(light)
	assert.Equal(t, cfg.Orb.LightIntensity, pl.Intensity)
	assert.Equal(t, cfg.Orb.LightRadius, pl.Radius)
	assert.Equal(t, cfg.Orb.LightColor, pl.Color)
	assert.Equal(t, mgl64.Vec3{10, 0, 10}, components.Transform.Get(light).Translation)

	parent, ok := components.Parent.Get(light).Parent.Entity()
	require.True(t, ok)
	assert.Equal(t, orb.Entity(), parent)

	require.True(t, orb.HasComponent(components.Sensor))
	sensor := components.Sensor.Get(orb)
	assert.Equal(t, cfg.Orb.SensorRadius, sensor.Radius)
	assert.Equal(t, cfg.Orb.SensorHeight, sensor.Height)
	assert.Equal(t, []string{tags.ResolvPlayer}, sensor.Detects)
	assert.True(t, components.Object.Get(orb).HasTags(tags.ResolvSensor))
}

func TestCollectOrbsInsideSensor(t *testing.T) {
	w, _, player := newScene(t, mgl64.Vec3{12, 0, 10})
	orb := factory.CreateOrb(w, mgl64.Vec3{10, 0, 10})
	SpawnOrbs(w)
	UpdateObjects(w)

	CollectOrbs(w)

	assert.False(t, orb.Valid())
	assert.Equal(t, 0, countLights(w))
	assert.Equal(t, 1, components.Player.Get(player).OrbsCollected)

	// Nothing left to collect.
	CollectOrbs(w)
	assert.Equal(t, 1, components.Player.Get(player).OrbsCollected)
}

func TestCollectOrbsOutsideSensor(t *testing.T) {
	tests := []struct {
		name   string
		player mgl64.Vec3
	}{
		{name: "too far", player: mgl64.Vec3{16, 0, 10}},
		{name: "square corner", player: mgl64.Vec3{14.5, 0, 14.5}},
		{name: "too high", player: mgl64.Vec3{10, 3, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, player := newScene(t, tt.player)
			orb := factory.CreateOrb(w, mgl64.Vec3{10, 0, 10})
			SpawnOrbs(w)
			UpdateObjects(w)

			CollectOrbs(w)

			assert.True(t, orb.Valid())
			assert.Equal(t, 0, components.Player.Get(player).OrbsCollected)
		})
	}
}

func TestCollectOrbsIgnoresUndecoratedOrbs(t *testing.T) {
	w, _, player := newScene(t, mgl64.Vec3{10, 0, 10})
	orb := factory.CreateOrb(w, mgl64.Vec3{10, 0, 10})

	CollectOrbs(w)

	assert.True(t, orb.Valid())
	assert.Equal(t, 0, components.Player.Get(player).OrbsCollected)
}

func TestWalkingIntoOrb(t *testing.T) {
	w, _, player := newScene(t, mgl64.Vec3{2, 0, 10})
	factory.CreateOrb(w, mgl64.Vec3{10, 0, 10})
	SpawnOrbs(w)

	for i := 0; i < 100; i++ {
		press(w, cfg.ActionMoveRight)
		UpdatePlayer(w)
		UpdateObjects(w)
		CollectOrbs(w)
	}

	assert.Equal(t, 1, components.Player.Get(player).OrbsCollected)
	assert.Greater(t, components.Transform.Get(player).Translation.X(), 5.0)
}

func TestUpdatePlayerClampsToLevel(t *testing.T) {
	w, _, player := newScene(t, mgl64.Vec3{1, 0, 1})

	for i := 0; i < 50; i++ {
		press(w, cfg.ActionMoveLeft)
		components.Input.Get(GetOrCreateInputState(w)).Current[cfg.ActionMoveForward] = true
		UpdatePlayer(w)
	}

	pos := components.Transform.Get(player).Translation
	assert.Equal(t, cfg.Player.Radius, pos.X())
	assert.Equal(t, cfg.Player.Radius, pos.Z())
	facing := components.Player.Get(player).Facing
	assert.InDelta(t, 1.0, facing.Len(), 1e-9)
}
