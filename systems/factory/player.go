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

func CreatePlayer(ecs *ecs.ECS, c cfg.CharacterConfig, set *assets.AnimationSet) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	setupCharacter(ecs, player, c, set, tags.ResolvPlayer)
	components.MeleeAttack.SetValue(player, components.MeleeAttackData{})
	return player
}
