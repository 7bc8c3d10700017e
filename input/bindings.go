// Package input maps keyboard and gamepad state onto game actions.
package input

import (
	cfg "github.com/automoto/orbwalk/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons bound to an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings
type Config struct {
	Bindings map[cfg.ActionID]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Default is the global input configuration
var Default Config

func init() {
	Default = Config{
		AnalogDeadzone: 0.25,
		Bindings: map[cfg.ActionID]Binding{
			cfg.ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			cfg.ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			cfg.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			cfg.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			cfg.ActionInteract: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			cfg.ActionAdvance: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			cfg.ActionOption1: {
				Keys: []ebiten.Key{ebiten.Key1},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			cfg.ActionOption2: {
				Keys: []ebiten.Key{ebiten.Key2},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			cfg.ActionOption3: {
				Keys: []ebiten.Key{ebiten.Key3},
			},
			cfg.ActionOption4: {
				Keys: []ebiten.Key{ebiten.Key4},
			},
		},
	}
}
