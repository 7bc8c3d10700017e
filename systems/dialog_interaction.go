package systems

import (
	"errors"
	"log"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/automoto/orbwalk/tags"
	"github.com/yohamta/donburi"
)

// OrbsVariable is the narrative variable that mirrors the player's orb count.
const OrbsVariable = "orbs"

var ErrNoRunner = errors.New("no dialogue runner")

// UpdateDialogInteraction starts a conversation with the nearest NPC in range
// when the player presses interact.
func UpdateDialogInteraction(w donburi.World) {
	if ActionsFrozen(w).IsFrozen() {
		return
	}
	input := components.Input.Get(GetOrCreateInputState(w))
	if !input.JustPressed(cfg.ActionInteract) {
		return
	}

	playerQuery.Each(w, func(playerEntry *donburi.Entry) {
		if !playerEntry.HasComponent(components.Object) {
			return
		}
		pos := components.Transform.Get(playerEntry).Translation
		obj := components.Object.Get(playerEntry).Object

		var nearest *donburi.Entry
		best := 0.0
		for _, npc := range sensorHits(obj, pos, tags.ResolvPlayer, tags.ResolvTalk) {
			if !npc.HasComponent(components.YarnNode) {
				continue
			}
			d := components.Transform.Get(npc).Translation.Sub(pos).Len()
			if nearest == nil || d < best {
				nearest, best = npc, d
			}
		}
		if nearest == nil {
			return
		}

		orbs := 0
		if playerEntry.HasComponent(components.Player) {
			orbs = components.Player.Get(playerEntry).OrbsCollected
		}
		if err := StartDialogue(w, nearest, orbs); err != nil {
			log.Printf("Warning: Could not start dialogue: %v", err)
		}
	})
}

// StartDialogue runs the node attached to npc, makes npc the dialog target
// and freezes player actions until the dialogue completes.
func StartDialogue(w donburi.World, npc *donburi.Entry, orbs int) error {
	runner, ok := DialogueRunner(w)
	if !ok {
		return ErrNoRunner
	}
	node := components.YarnNode.Get(npc).Node

	runner.SetVariable(OrbsVariable, orbs)
	// A failed start has either not begun or already reported completion,
	// so there is nothing to freeze for.
	if err := runner.Start(node); err != nil {
		return err
	}

	DialogTarget(w).Set(npc.Entity())
	ActionsFrozen(w).Freeze()
	return nil
}
