package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionInteract
	ActionAdvance
	ActionOption1
	ActionOption2
	ActionOption3
	ActionOption4
	ActionCount // Must be last - used for array sizing
)

// OptionAction returns the hotkey action that selects option i (0-based).
func OptionAction(i int) (ActionID, bool) {
	a := ActionOption1 + ActionID(i)
	if i < 0 || a > ActionOption4 {
		return ActionNone, false
	}
	return a, true
}
