package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns the enemy. It shares the player's character components
// and adds a health pool and the death latch.
func CreateEnemy(ecs *ecs.ECS, c cfg.CharacterConfig, set *assets.AnimationSet) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	setupCharacter(ecs, enemy, c, set, tags.ResolvEnemy)

	// Set health from config
	components.Health.SetValue(enemy, components.HealthData{
		Current: c.Health,
		Max:     c.Health,
	})
	components.Death.SetValue(enemy, components.DeathData{})

	return enemy
}
