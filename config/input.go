package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack1
	ActionAttack2
	ActionAttack3
	ActionQuit
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Attack actions in the order they are checked within one tick.
	// The first one pressed wins when several go down together.
	AttackActions []ActionID
}

// Input is the global input configuration
var Input InputConfig

// AttackType returns the attack type (1, 2 or 3) triggered by an action, or 0.
func AttackType(id ActionID) int {
	switch id {
	case ActionAttack1:
		return 1
	case ActionAttack2:
		return 2
	case ActionAttack3:
		return 3
	}
	return 0
}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionJump:        {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionAttack1:     {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionAttack2:     {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionAttack3:     {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionQuit:        {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
		AttackActions: []ActionID{ActionAttack1, ActionAttack2, ActionAttack3},
	}
}
