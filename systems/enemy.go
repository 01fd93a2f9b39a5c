package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies animates every enemy that has not disappeared yet and
// lets it fall. Enemies never move sideways or jump.
func UpdateEnemies(ecs *ecs.ECS) {
	now := Now(ecs.World)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if Disappeared(e) {
			return
		}

		StepAnimation(components.Animation.Get(e), now)
		latchDisappearance(e)

		FallCharacter(
			components.Object.Get(e),
			components.Physics.Get(e),
			components.Character.Get(e),
		)
	})
}

// latchDisappearance marks a dead enemy as gone one tick after its death
// animation reached the final frame.
func latchDisappearance(e *donburi.Entry) {
	char := components.Character.Get(e)
	anim := components.Animation.Get(e)
	if char.Alive || anim.CurrentState != cfg.Dead || anim.CurrentAnimation == nil {
		return
	}
	if !anim.CurrentAnimation.OnLastFrame() {
		return
	}

	death := components.Death.Get(e)
	if death.ReachedLast {
		death.Disappeared = true
		return
	}
	death.ReachedLast = true
}

// Disappeared reports whether e finished dying and is no longer shown.
func Disappeared(e *donburi.Entry) bool {
	if !e.HasComponent(components.Death) {
		return false
	}
	return components.Death.Get(e).Disappeared
}
