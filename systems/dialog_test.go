package systems

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/systems/factory"
	"github.com/automoto/orbwalk/yarn"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSpawnDialogueRunnerWaitsForProject(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})

	SpawnDialogueRunner(w)
	SpawnDialogueRunner(w)
	assert.Equal(t, 0, countRunners(w))
}

func TestSpawnDialogueRunnerOnce(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})
	project := oneLineProject(t)

	InstallDialogueProject(w, project)
	for i := 0; i < 5; i++ {
		SpawnDialogueRunner(w)
	}

	assert.Equal(t, 1, countRunners(w))
	r, ok := DialogueRunner(w)
	require.True(t, ok)
	assert.Same(t, project, r.Project())
	assert.False(t, r.IsRunning())
}

func TestSpawnDialogueRunnerReloadKeepsSingleRunner(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})
	r := withRunner(t, w, oneLineProject(t))
	r.SetVariable(OrbsVariable, 2)

	next, err := yarn.NewProject(nil, yarn.Node{Title: "Hello", Lines: []yarn.Line{{Text: "New hi."}}})
	require.NoError(t, err)
	InstallDialogueProject(w, next)
	SpawnDialogueRunner(w)

	assert.Equal(t, 1, countRunners(w))
	same, _ := DialogueRunner(w)
	assert.Same(t, r, same)
	assert.Same(t, next, r.Project())
	assert.Equal(t, 2, r.Variables()[OrbsVariable])
}

func TestSpawnDialogueRunnerReloadWaitsForIdleRunner(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})
	first := oneLineProject(t)
	r := withRunner(t, w, first)
	require.NoError(t, r.Start("Hello"))

	next := oneLineProject(t)
	InstallDialogueProject(w, next)
	SpawnDialogueRunner(w)
	assert.Same(t, first, r.Project())

	require.NoError(t, r.Advance())
	SpawnDialogueRunner(w)
	assert.Same(t, next, r.Project())
	assert.Equal(t, 1, countRunners(w))
}

func TestUnfreezeAfterDialogIsIdempotent(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})
	npc := factory.CreateNpc(w, mgl64.Vec3{5, 0, 5}, "Hello")
	DialogTarget(w).Set(npc.Entity())
	ActionsFrozen(w).Freeze()

	components.DialogueCompleteEvent.Publish(w, components.DialogueCompleteData{Node: "A"})
	components.DialogueCompleteEvent.Publish(w, components.DialogueCompleteData{Node: "B"})
	deliverDialogueEvents(w)
	require.Len(t, dialogueCompletions(w), 2)

	UnfreezeAfterDialog(w)
	UnfreezeAfterDialog(w)

	assert.False(t, ActionsFrozen(w).IsFrozen())
	_, ok := DialogTarget(w).Get()
	assert.False(t, ok)
}

func TestUnfreezeAfterDialogWithoutCompletionKeepsState(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})
	npc := factory.CreateNpc(w, mgl64.Vec3{5, 0, 5}, "Hello")
	DialogTarget(w).Set(npc.Entity())
	ActionsFrozen(w).Freeze()

	UpdateDialogPhase(w)

	assert.True(t, ActionsFrozen(w).IsFrozen())
	e, ok := DialogTarget(w).Get()
	assert.True(t, ok)
	assert.Equal(t, npc.Entity(), e)
}

func TestDialogueConversationRoundTrip(t *testing.T) {
	w, camera, player := newScene(t, mgl64.Vec3{5, 0, 5})
	npc := factory.CreateNpc(w, mgl64.Vec3{7, 0, 5}, "Hello")
	components.Player.Get(player).OrbsCollected = 3
	r := withRunner(t, w, oneLineProject(t))
	UpdateObjects(w)

	press(w, cfg.ActionInteract)
	UpdateDialogInteraction(w)
	UpdateDialogPhase(w)

	require.True(t, r.IsRunning())
	assert.Equal(t, 3, r.Variables()[OrbsVariable])
	assert.True(t, ActionsFrozen(w).IsFrozen())
	e, ok := DialogTarget(w).Get()
	require.True(t, ok)
	assert.Equal(t, npc.Entity(), e)
	require.True(t, focusOf(camera).HasSecondary())
	assert.Equal(t, mgl64.Vec3{7, 0, 5}, *focusOf(camera).SecondaryTarget)

	// Movement is frozen while talking.
	press(w, cfg.ActionMoveRight)
	UpdatePlayer(w)
	assert.Equal(t, mgl64.Vec3{5, 0, 5}, components.Transform.Get(player).Translation)

	press(w, cfg.ActionAdvance)
	UpdateDialogueAdvance(w)
	assert.False(t, r.IsRunning())
	UpdateDialogPhase(w)

	assert.False(t, ActionsFrozen(w).IsFrozen())
	assert.False(t, focusOf(camera).HasSecondary())
	_, ok = DialogTarget(w).Get()
	assert.False(t, ok)
}

func TestDialogInteractionNeedsNpcInRange(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{2, 0, 2})
	factory.CreateNpc(w, mgl64.Vec3{15, 0, 15}, "Hello")
	r := withRunner(t, w, oneLineProject(t))
	UpdateObjects(w)

	press(w, cfg.ActionInteract)
	UpdateDialogInteraction(w)

	assert.False(t, r.IsRunning())
	assert.False(t, ActionsFrozen(w).IsFrozen())
}

func TestDialogInteractionPicksNearestNpc(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{10, 0, 10})
	factory.CreateNpc(w, mgl64.Vec3{12, 0, 10}, "Hello")
	near := factory.CreateNpc(w, mgl64.Vec3{10, 0, 11}, "Hello")
	withRunner(t, w, oneLineProject(t))
	UpdateObjects(w)

	press(w, cfg.ActionInteract)
	UpdateDialogInteraction(w)

	e, ok := DialogTarget(w).Get()
	require.True(t, ok)
	assert.Equal(t, near.Entity(), e)
}

func TestStartDialogueThatEndsImmediately(t *testing.T) {
	w, camera, _ := newScene(t, mgl64.Vec3{5, 0, 5})
	npc := factory.CreateNpc(w, mgl64.Vec3{6, 0, 5}, "Silent")
	r := withRunner(t, w, oneLineProject(t))

	require.NoError(t, StartDialogue(w, npc, 0))
	assert.False(t, r.IsRunning())

	// The completion lands in the same frame as the target, and wins.
	UpdateDialogPhase(w)
	assert.False(t, focusOf(camera).HasSecondary())
	assert.False(t, ActionsFrozen(w).IsFrozen())
	_, ok := DialogTarget(w).Get()
	assert.False(t, ok)
}

func TestStartDialogueWithoutRunner(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{5, 0, 5})
	npc := factory.CreateNpc(w, mgl64.Vec3{6, 0, 5}, "Hello")

	err := StartDialogue(w, npc, 0)
	assert.ErrorIs(t, err, ErrNoRunner)
	assert.False(t, ActionsFrozen(w).IsFrozen())
}

func TestDialogueAdvanceSelectsOption(t *testing.T) {
	p, err := yarn.NewProject(nil,
		yarn.Node{Title: "Ask", Options: []yarn.Option{{Text: "Yes", Jump: "Yes"}, {Text: "No"}}},
		yarn.Node{Title: "Yes", Lines: []yarn.Line{{Text: "Great."}}},
	)
	require.NoError(t, err)
	w, _, _ := newScene(t, mgl64.Vec3{})
	r := withRunner(t, w, p)
	require.NoError(t, r.Start("Ask"))

	press(w, cfg.ActionAdvance)
	UpdateDialogueAdvance(w)
	assert.Equal(t, "Ask", r.CurrentNode())

	press(w, cfg.ActionOption1)
	UpdateDialogueAdvance(w)
	assert.Equal(t, "Yes", r.CurrentNode())

	// Option keys do nothing while a line is showing.
	UpdateDialogueAdvance(w)
	assert.Equal(t, "Yes", r.CurrentNode())
}

type fakeNotifier struct {
	changed bool
	err     error
}

func (f *fakeNotifier) Changed() bool {
	c := f.changed
	f.changed = false
	return c
}

func (f *fakeNotifier) Err() error {
	err := f.err
	f.err = nil
	return err
}

func TestProjectReloadSystem(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})
	r := withRunner(t, w, oneLineProject(t))

	next := oneLineProject(t)
	loads := 0
	notifier := &fakeNotifier{}
	reload := NewProjectReloadSystem(notifier, func() (*yarn.Project, error) {
		loads++
		return next, nil
	})

	reload(w)
	assert.Equal(t, 0, loads)

	notifier.changed = true
	reload(w)
	UpdateDialogPhase(w)
	assert.Equal(t, 1, loads)
	assert.Same(t, next, r.Project())

	failing := NewProjectReloadSystem(&fakeNotifier{changed: true}, func() (*yarn.Project, error) {
		return nil, errors.New("broken")
	})
	failing(w)
	UpdateDialogPhase(w)
	assert.Same(t, next, r.Project())
}

func TestProjectReloadSystemLogsWatchErrors(t *testing.T) {
	w, _, _ := newScene(t, mgl64.Vec3{})
	withRunner(t, w, oneLineProject(t))

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	notifier := &fakeNotifier{err: errors.New("queue overflow")}
	loads := 0
	reload := NewProjectReloadSystem(notifier, func() (*yarn.Project, error) {
		loads++
		return oneLineProject(t), nil
	})

	reload(w)
	assert.Contains(t, buf.String(), "Dialogue watcher: queue overflow")
	assert.Nil(t, notifier.err)
	assert.Equal(t, 0, loads)

	buf.Reset()
	reload(w)
	assert.Empty(t, buf.String())
}

func TestGetOrCreateStateIsSingleton(t *testing.T) {
	w := donburi.NewWorld()
	a := GetOrCreateDialogState(w)
	b := GetOrCreateDialogState(w)
	assert.Equal(t, a.Entity(), b.Entity())

	c := GetOrCreateInputState(w)
	d := GetOrCreateInputState(w)
	assert.Equal(t, c.Entity(), d.Entity())
}
