package factory

import (
	"time"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// setupCharacter fills the components shared by the player and the enemy.
// The hitbox takes the size of the first idle frame and is centered on
// the spawn point.
func setupCharacter(ecs *ecs.ECS, e *donburi.Entry, c cfg.CharacterConfig, set *assets.AnimationSet, resolvTag string) {
	w, h := float64(set.Width), float64(set.Height)
	obj := resolv.NewObject(c.SpawnX-w/2, c.SpawnY-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvCharacter, resolvTag)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if space := SpaceOf(ecs.World); space != nil {
		space.Add(obj)
	}

	components.Character.SetValue(e, components.CharacterData{
		CharType:  set.CharType,
		Direction: cfg.DirectionRight,
		Alive:     true,
		InAir:     true,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Speed:        c.Speed,
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		JumpSpeed:    cfg.Physics.JumpSpeed,
	})

	components.Animation.Set(e, GenerateAnimations(set, clockNow(ecs.World)))

	// Hit flash tints toward red
	components.Flash.SetValue(e, components.FlashData{R: 1, G: 0.4, B: 0.4})
}

func clockNow(w donburi.World) time.Duration {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Now
	}
	return 0
}
