package systems

import (
	"log"

	"github.com/automoto/orbwalk/components"
	"github.com/automoto/orbwalk/systems/factory"
	"github.com/automoto/orbwalk/yarn"
	"github.com/yohamta/donburi"
)

// SpawnDialogueRunner creates the dialogue runner the first cycle after the
// narrative project becomes available. A project that becomes available again
// (a reload) is handed to the existing runner instead, so there is never more
// than one.
func SpawnDialogueRunner(w donburi.World) {
	project := components.DialogueProject.Get(GetOrCreateDialogState(w))
	if !project.Added() {
		return
	}

	if runner, ok := DialogueRunner(w); ok {
		// A running dialogue keeps its project; try again next frame.
		if err := runner.SetProject(project.Project); err != nil {
			return
		}
		project.MarkSeen()
		log.Printf("Dialogue project reloaded (%d nodes)", len(project.Project.NodeNames()))
		return
	}

	var runner *yarn.Runner
	if entry, ok := components.DialogueRunner.First(w); ok {
		runner = factory.AttachDialogueRunner(w, entry, project.Project)
	} else {
		runner = components.DialogueRunner.Get(factory.CreateDialogueRunner(w, project.Project)).Runner
	}
	project.MarkSeen()

	if saved, err := LoadDialogueProgress(); err == nil && saved != nil {
		ApplyDialogueProgress(runner, saved)
	}
}

// UnfreezeAfterDialog reacts to every dialogue completion delivered this frame
// by clearing the dialog target and lifting the input freeze. Repeated
// completions leave the same state as one.
func UnfreezeAfterDialog(w donburi.World) {
	state := GetOrCreateDialogState(w)
	batch := components.DialogueCompletions.Get(state)
	if len(batch.Pending) == 0 {
		return
	}

	target := components.DialogTarget.Get(state)
	freeze := ActionsFrozen(w)
	for range batch.Pending {
		target.Clear()
		freeze.Unfreeze()
	}
}

// deliverDialogueEvents moves published completion events into this frame's batch.
func deliverDialogueEvents(w donburi.World) {
	GetOrCreateDialogState(w)
	components.DialogueCompleteEvent.ProcessEvents(w)
}

// endDialogBatch drops the completions handled this frame.
func endDialogBatch(w donburi.World) {
	batch := components.DialogueCompletions.Get(GetOrCreateDialogState(w))
	batch.Pending = batch.Pending[:0]
}

// dialogueCompletions returns the completions delivered this frame.
func dialogueCompletions(w donburi.World) []components.DialogueCompleteData {
	return components.DialogueCompletions.Get(GetOrCreateDialogState(w)).Pending
}
