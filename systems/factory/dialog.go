package factory

import (
	"github.com/automoto/orbwalk/archetypes"
	"github.com/automoto/orbwalk/components"
	"github.com/automoto/orbwalk/yarn"
	"github.com/yohamta/donburi"
)

// CreateDialogState creates the singleton that holds the dialog target, the
// narrative project and this frame's completion batch, and routes published
// completion events into that batch.
func CreateDialogState(w donburi.World) *donburi.Entry {
	state := archetypes.DialogState.Spawn(w)
	components.DialogueCompleteEvent.Subscribe(w, collectDialogueComplete)
	return state
}

func collectDialogueComplete(w donburi.World, evt components.DialogueCompleteData) {
	entry, ok := components.DialogueCompletions.First(w)
	if !ok {
		return
	}
	batch := components.DialogueCompletions.Get(entry)
	batch.Pending = append(batch.Pending, evt)
}

// CreateDialogueRunner builds a runner from project and attaches it to a new
// entity. Completion is published as a DialogueCompleteEvent.
func CreateDialogueRunner(w donburi.World, project *yarn.Project) *donburi.Entry {
	entry := archetypes.DialogueRunner.Spawn(w)
	AttachDialogueRunner(w, entry, project)
	return entry
}

// AttachDialogueRunner builds a runner from project and stores it on entry.
func AttachDialogueRunner(w donburi.World, entry *donburi.Entry, project *yarn.Project) *yarn.Runner {
	runner := project.NewRunner()
	runner.OnComplete = func(node string) {
		components.DialogueCompleteEvent.Publish(w, components.DialogueCompleteData{Node: node})
	}
	components.DialogueRunner.SetValue(entry, components.DialogueRunnerData{Runner: runner})
	return runner
}

func CreateInputState(w donburi.World) *donburi.Entry {
	return archetypes.InputState.Spawn(w)
}
