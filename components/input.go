package components

import (
	cfg "github.com/automoto/orbwalk/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Swap moves the current frame into the previous slot and clears the current one.
func (i *InputData) Swap() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()

// ActionsFrozenData suppresses player actions while a dialogue is on screen.
type ActionsFrozenData struct {
	frozen bool
}

func (a *ActionsFrozenData) Freeze() {
	a.frozen = true
}

// Unfreeze clears the flag. Calling it on an unfrozen flag is a no-op.
func (a *ActionsFrozenData) Unfreeze() {
	a.frozen = false
}

func (a *ActionsFrozenData) IsFrozen() bool {
	return a.frozen
}

var ActionsFrozen = donburi.NewComponentType[ActionsFrozenData]()
