package systems

import (
	"time"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerAnimation steps the player's animation. It runs every tick,
// dead or alive.
func UpdatePlayerAnimation(ecs *ecs.ECS) {
	now := Now(ecs.World)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		StepAnimation(components.Animation.Get(e), now)
	})
}

// StepAnimation advances the current animation if its frame cooldown passed.
func StepAnimation(anim *components.AnimationData, now time.Duration) {
	if anim.CurrentAnimation == nil {
		return
	}
	anim.CurrentAnimation.Update(now)
}
