package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and applies this tick's key presses.
// It runs after the player update, so held movement keys steer the player
// on the next tick.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	input.Advance(pollKeyboard())
	ApplyInput(ecs.World, input)
}

func pollKeyboard() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
	}
	return pressed
}

// ApplyInput turns edge-triggered presses into game events: quitting,
// toggling the overlay, requesting a jump and starting a swing.
func ApplyInput(w donburi.World, input *components.InputData) {
	session := GetOrCreateSession(w)
	if input.Action(cfg.ActionQuit).JustPressed {
		session.Quit = true
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		session.Debug = !session.Debug
	}

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)

	if input.Action(cfg.ActionJump).JustPressed && char.Alive {
		char.Jump = true
	}

	now := Now(w)
	melee := components.MeleeAttack.Get(playerEntry)
	for _, id := range cfg.Input.AttackActions {
		if !input.Action(id).JustPressed {
			continue
		}
		attackType := cfg.AttackType(id)
		if melee.Begin(attackType, now) {
			components.Animation.Get(playerEntry).SetAction(cfg.AttackState(attackType), now)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
