package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer resolves the active swing, picks the player's action and
// moves the player using the held movement keys. Nothing happens once the
// player is dead.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)
	if !char.Alive {
		return
	}

	now := Now(ecs.World)
	melee := components.MeleeAttack.Get(playerEntry)
	input := getOrCreateInput(ecs.World)

	if melee.IsAttacking {
		if enemyEntry, ok := tags.Enemy.First(ecs.World); ok {
			if ResolveAttack(melee, playerEntry, enemyEntry, now) {
				announceHit(ecs.World, melee.AttackType, enemyEntry)
			}
		}
		melee.Expire(now, cfg.Combat.AttackCooldown)
	}

	left := input.Current[cfg.ActionMoveLeft]
	right := input.Current[cfg.ActionMoveRight]

	components.Animation.Get(playerEntry).SetAction(selectPlayerAction(melee, char, left, right), now)

	MoveCharacter(
		components.Object.Get(playerEntry),
		components.Physics.Get(playerEntry),
		char,
		left, right,
	)
}

// selectPlayerAction picks the action by priority: attacking, then airborne,
// then walking, then idle.
func selectPlayerAction(melee *components.MeleeAttackData, char *components.CharacterData, left, right bool) cfg.StateID {
	switch {
	case melee.IsAttacking:
		return cfg.AttackState(melee.AttackType)
	case char.InAir:
		return cfg.Jump
	case left || right:
		return cfg.Walk
	default:
		return cfg.Idle
	}
}
