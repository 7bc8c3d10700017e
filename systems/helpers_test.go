package systems

import (
	"testing"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/systems/factory"
	"github.com/automoto/orbwalk/yarn"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// newScene builds a world with a collision space, a camera and one player.
func newScene(t *testing.T, playerPos mgl64.Vec3) (donburi.World, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateLevel(w, 20, 20)
	factory.CreateSpace(w, 20, 20, 1)
	camera := factory.CreateCamera(w, playerPos)
	player := factory.CreatePlayer(w, playerPos)
	GetOrCreateDialogState(w)
	GetOrCreateInputState(w)
	return w, camera, player
}

// withRunner installs project and spawns the runner for it.
func withRunner(t *testing.T, w donburi.World, project *yarn.Project) *yarn.Runner {
	t.Helper()
	InstallDialogueProject(w, project)
	SpawnDialogueRunner(w)
	r, ok := DialogueRunner(w)
	require.True(t, ok)
	return r
}

func oneLineProject(t *testing.T) *yarn.Project {
	t.Helper()
	p, err := yarn.NewProject(map[string]any{OrbsVariable: 0},
		yarn.Node{Title: "Hello", Lines: []yarn.Line{{Speaker: "Npc", Text: "Hi."}}},
		yarn.Node{Title: "Silent"},
	)
	require.NoError(t, err)
	return p
}

func press(w donburi.World, a cfg.ActionID) {
	input := components.Input.Get(GetOrCreateInputState(w))
	input.Swap()
	input.Current[a] = true
}

func focusOf(camera *donburi.Entry) *components.CameraFocusData {
	return components.CameraFocus.Get(camera)
}

func countRunners(w donburi.World) int {
	n := 0
	components.DialogueRunner.Each(w, func(*donburi.Entry) { n++ })
	return n
}
