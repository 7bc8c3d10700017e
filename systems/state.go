package systems

import (
	"fmt"

	"github.com/automoto/orbwalk/components"
	"github.com/automoto/orbwalk/systems/factory"
	"github.com/automoto/orbwalk/yarn"
	"github.com/yohamta/donburi"
)

// GetOrCreateDialogState returns the singleton dialog state entry, creating it if needed.
func GetOrCreateDialogState(w donburi.World) *donburi.Entry {
	entry, ok := components.DialogTarget.First(w)
	if !ok {
		entry = factory.CreateDialogState(w)
	}
	return entry
}

// GetOrCreateInputState returns the singleton input / freeze entry, creating it if needed.
func GetOrCreateInputState(w donburi.World) *donburi.Entry {
	entry, ok := components.ActionsFrozen.First(w)
	if !ok {
		entry = factory.CreateInputState(w)
	}
	return entry
}

// DialogTarget returns the dialog target store.
func DialogTarget(w donburi.World) *components.DialogTargetData {
	return components.DialogTarget.Get(GetOrCreateDialogState(w))
}

// ActionsFrozen returns the input-freeze flag.
func ActionsFrozen(w donburi.World) *components.ActionsFrozenData {
	return components.ActionsFrozen.Get(GetOrCreateInputState(w))
}

// InstallDialogueProject makes a loaded project available; the runner
// lifecycle picks it up on the next Dialog phase.
func InstallDialogueProject(w donburi.World, p *yarn.Project) {
	components.DialogueProject.Get(GetOrCreateDialogState(w)).Install(p)
}

// DialogueRunner returns the live runner, if one has been spawned.
func DialogueRunner(w donburi.World) (*yarn.Runner, bool) {
	entry, ok := components.DialogueRunner.First(w)
	if !ok {
		return nil, false
	}
	r := components.DialogueRunner.Get(entry).Runner
	return r, r != nil
}

// single returns the only entry matching q. Zero or several matches mean the
// scene is misconfigured, which is not something to limp along with.
func single(w donburi.World, q *donburi.Query, what string) *donburi.Entry {
	var found *donburi.Entry
	n := 0
	q.Each(w, func(entry *donburi.Entry) {
		if found == nil {
			found = entry
		}
		n++
	})
	if n != 1 {
		panic(fmt.Sprintf("expected exactly one %s, found %d", what, n))
	}
	return found
}
