package systems

import (
	"log"

	"github.com/automoto/orbwalk/components"
	cfg "github.com/automoto/orbwalk/config"
	"github.com/yohamta/donburi"
)

// UpdateDialogueAdvance moves the running dialogue forward: advance skips to
// the next line, an option hotkey picks that option.
func UpdateDialogueAdvance(w donburi.World) {
	runner, ok := DialogueRunner(w)
	if !ok || !runner.IsRunning() {
		return
	}
	input := components.Input.Get(GetOrCreateInputState(w))

	_, options, hasLine := runner.Current()
	if hasLine {
		if input.JustPressed(cfg.ActionAdvance) {
			if err := runner.Advance(); err != nil {
				log.Printf("Warning: Dialogue advance failed: %v", err)
			}
		}
		return
	}

	for i := range options {
		if i >= cfg.Dialog.MaxOptions {
			break
		}
		action, ok := cfg.OptionAction(i)
		if !ok || !input.JustPressed(action) {
			continue
		}
		if err := runner.Select(i); err != nil {
			log.Printf("Warning: Dialogue option %d failed: %v", i+1, err)
		}
		return
	}
}
