package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The shipped level must reference only nodes the shipped project defines.
func TestShippedLevelMatchesProject(t *testing.T) {
	layout := MustLoadLevel()
	project, err := LoadDialogueProject()
	require.NoError(t, err)

	require.NotEmpty(t, layout.Npcs)
	assert.NotEmpty(t, layout.Orbs)
	for _, npc := range layout.Npcs {
		_, ok := project.Node(npc.YarnNode)
		assert.True(t, ok, "npc %s starts missing node %s", npc.Name, npc.YarnNode)
	}
}

func TestShippedProjectRuns(t *testing.T) {
	project, err := LoadDialogueProject()
	require.NoError(t, err)

	r := project.NewRunner()
	completed := ""
	r.OnComplete = func(node string) { completed = node }

	require.NoError(t, r.Start("Keeper"))
	for i := 0; i < 10 && r.IsRunning(); i++ {
		require.NoError(t, r.Advance())
	}
	assert.False(t, r.IsRunning())
	assert.Equal(t, "KeeperEnd", completed)
}
